package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/doc-assist/internal/config"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
)

type implSummarizer struct {
	model  ChatModel
	cfg    config.AIConfig
	logger logger.Logger
}

// New creates a Summarizer for the configured provider. A missing API key is
// rejected before any client is built.
func New(ctx context.Context, cfg config.AIConfig, log logger.Logger) (Summarizer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.ValidationError("API key is required for summarization", nil)
	}

	var (
		model ChatModel
		err   error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		model, err = newGeminiModel(ctx, cfg.APIKey, cfg.BaseURL)
	case config.ProviderOpenAI, "":
		model = newOpenAIModel(cfg.APIKey, cfg.BaseURL)
	default:
		return nil, domain.ValidationError("unknown AI provider: "+cfg.Provider, nil)
	}
	if err != nil {
		return nil, domain.SummarizationError("create "+cfg.Provider+" client", err)
	}

	return NewWithModel(model, cfg, log), nil
}

// NewWithModel creates a Summarizer around an existing ChatModel.
func NewWithModel(model ChatModel, cfg config.AIConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		model:  model,
		cfg:    cfg,
		logger: log,
	}
}
