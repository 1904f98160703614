package summarizer

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

type geminiModel struct {
	client *genai.Client
}

func newGeminiModel(ctx context.Context, apiKey, baseURL string) (*geminiModel, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &geminiModel{client: client}, nil
}

func (m *geminiModel) Complete(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		MaxOutputTokens:   int32(req.MaxTokens),
	}

	result, err := m.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.User), gc)
	if err != nil {
		return ChatResponse{}, err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ChatResponse{}, errors.New("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	resp := ChatResponse{Text: text}
	if result.UsageMetadata != nil {
		resp.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}
