package processor

import (
	"context"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
)

// Processor runs the document pipeline. Session-scoped operations take the
// caller's Session and return the updated copy; nothing is kept between calls.
type Processor interface {
	// LoadDocument persists an upload, describes it and extracts its text.
	LoadDocument(ctx context.Context, sess domain.Session, originName string, data []byte) (domain.Session, error)

	// UseText replaces the session's text with pasted input.
	UseText(sess domain.Session, text string) domain.Session

	// Summarize summarizes the session's text. Only a successful result is
	// stored on the returned session.
	Summarize(ctx context.Context, sess domain.Session, opts summarizer.Options) (domain.Session, domain.SummaryResult)

	// KeyPoints extracts key points from the session's text.
	KeyPoints(ctx context.Context, sess domain.Session) domain.KeyPointsResult

	// ConvertPDF persists a PDF upload and converts it to DOCX in the output directory.
	ConvertPDF(ctx context.Context, sess domain.Session, originName string, data []byte) (domain.Session, domain.ConversionResult)

	// Process handles a document dropped into the inbox: summarize it, write a
	// report and archive the original.
	Process(ctx context.Context, path string) error

	// Cleanup runs one best-effort pass over stale temporary files.
	Cleanup(ctx context.Context) int
}
