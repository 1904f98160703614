package summarizer

import (
	"context"
	"errors"
	"math"

	"github.com/sashabaranov/go-openai"
)

type openAIModel struct {
	client *openai.Client
}

func newOpenAIModel(apiKey, baseURL string) *openAIModel {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIModel{client: openai.NewClientWithConfig(cfg)}
}

func (m *openAIModel) Complete(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	// the request omits a zero temperature, which the API reads as 1
	temperature := req.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return ChatResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return ChatResponse{}, errors.New("no response from OpenAI")
	}

	return ChatResponse{
		Text:        resp.Choices[0].Message.Content,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}
