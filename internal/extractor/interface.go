package extractor

import (
	"context"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// Extractor turns supported documents into plain text.
type Extractor interface {
	// ExtractText returns the trimmed plain text of the file at path, dispatching
	// on the declared extension.
	ExtractText(ctx context.Context, path, ext string) (string, error)

	// DocumentInfo describes the file at path. Page count failures never
	// surface as errors; only a failed stat does.
	DocumentInfo(ctx context.Context, path, ext string) (domain.DocumentInfo, error)
}
