package extractor

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/doc-assist/internal/docx"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

func (e *implExtractor) extractDOCX(ctx context.Context, path string) (string, error) {
	paragraphs, err := docx.ReadParagraphs(path)
	if err != nil {
		return "", domain.ExtractionError("Error extracting text from DOCX", err)
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}
