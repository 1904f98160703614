package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

const (
	errNoText          = "No text provided for summarization"
	errNoKeyPointsText = "No text provided for key point extraction"
)

var errEmptyResponse = errors.New("empty response from model")

// Summarize sends text to the chat model with the style and language
// instructions. It makes exactly one call and never retries. The result
// echoes the requested language even when the prompt fell back to English.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) domain.SummaryResult {
	if strings.TrimSpace(text) == "" {
		return domain.SummaryResult{Success: false, Error: errNoText}
	}

	style := domain.ParseSummaryStyle(string(opts.Style))
	requested := opts.Language
	if requested == "" {
		requested = domain.LanguageEnglish
	}
	lang := s.normalizeLanguage(ctx, requested)

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = s.cfg.MaxTokens
	}

	s.logger.Info(ctx, "Summarizing %d characters (style=%s, language=%s, model=%s)", len(text), style, lang, s.cfg.Model)

	resp, err := s.complete(ctx, ChatRequest{
		Model:       s.cfg.Model,
		System:      summarySystemPrompt,
		User:        buildSummaryPrompt(style, lang, text),
		MaxTokens:   maxTokens,
		Temperature: s.cfg.SummaryTemperature(),
	})
	if err != nil {
		s.logger.Error(ctx, "Summarization failed: %v", err)
		return domain.SummaryResult{
			Success: false,
			Error:   fmt.Sprintf("Summarization failed: %v", err),
		}
	}

	s.logger.Info(ctx, "Summary ready (%d tokens)", resp.TotalTokens)
	return domain.SummaryResult{
		Success:     true,
		Summary:     resp.Text,
		SummaryType: style,
		Language:    requested,
		Model:       s.cfg.Model,
		TokensUsed:  resp.TotalTokens,
	}
}

// ExtractKeyPoints asks the model for the key points of text using the
// key point token budget and temperature.
func (s *implSummarizer) ExtractKeyPoints(ctx context.Context, text string) domain.KeyPointsResult {
	if strings.TrimSpace(text) == "" {
		return domain.KeyPointsResult{Success: false, Error: errNoKeyPointsText}
	}

	s.logger.Info(ctx, "Extracting key points from %d characters", len(text))

	resp, err := s.complete(ctx, ChatRequest{
		Model:       s.cfg.Model,
		System:      keyPointsSystemPrompt,
		User:        buildKeyPointsPrompt(text),
		MaxTokens:   s.cfg.KeyPointsMaxTokens,
		Temperature: s.cfg.KeyPointsTemp(),
	})
	if err != nil {
		s.logger.Error(ctx, "Key point extraction failed: %v", err)
		return domain.KeyPointsResult{
			Success: false,
			Error:   fmt.Sprintf("Key point extraction failed: %v", err),
		}
	}

	return domain.KeyPointsResult{
		Success:    true,
		KeyPoints:  resp.Text,
		TokensUsed: resp.TotalTokens,
	}
}

// complete performs the call and trims the reply. A blank reply is an error
// so a successful result always carries text.
func (s *implSummarizer) complete(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	resp, err := s.model.Complete(ctx, req)
	if err != nil {
		return ChatResponse{}, err
	}

	resp.Text = strings.TrimSpace(resp.Text)
	if resp.Text == "" {
		return ChatResponse{}, errEmptyResponse
	}
	if resp.TotalTokens < 0 {
		resp.TotalTokens = 0
	}

	return resp, nil
}

// normalizeLanguage maps unknown languages to English with a warning.
func (s *implSummarizer) normalizeLanguage(ctx context.Context, lang domain.Language) domain.Language {
	if lang == "" {
		return domain.LanguageEnglish
	}
	if _, ok := languageInstructions[lang]; ok {
		return lang
	}
	s.logger.Warn(ctx, "Unknown language %q, answering in English", lang)
	return domain.LanguageEnglish
}
