package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// Summarizer produces LLM-generated summaries and key points. Failures are
// reported inside the returned records, never as errors.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts Options) domain.SummaryResult
	ExtractKeyPoints(ctx context.Context, text string) domain.KeyPointsResult
}

// Options tune a single Summarize call.
type Options struct {
	Style    domain.SummaryStyle
	Language domain.Language
	// MaxTokens caps the response; zero uses the configured default.
	MaxTokens int
}

// ChatModel sends one system+user exchange to a remote chat completion API.
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type ChatRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

type ChatResponse struct {
	Text        string
	TotalTokens int
}
