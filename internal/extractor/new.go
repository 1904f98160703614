package extractor

import (
	"context"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
)

type handler func(ctx context.Context, path string) (string, error)

type implExtractor struct {
	logger   logger.Logger
	handlers map[domain.Format]handler
}

// New creates an Extractor for PDF, DOCX and TXT files.
func New(log logger.Logger) Extractor {
	e := &implExtractor{logger: log}
	e.handlers = map[domain.Format]handler{
		domain.FormatPDF:  e.extractPDF,
		domain.FormatDOCX: e.extractDOCX,
		domain.FormatTXT:  e.extractTXT,
	}
	return e
}
