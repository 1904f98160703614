package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// extractPDF joins the text of every page that has any, in page order.
func (e *implExtractor) extractPDF(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", domain.ExtractionError("Error extracting text from PDF", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", domain.ExtractionError(fmt.Sprintf("Error extracting text from PDF page %d", i+1), err)
		}
		// fitz ends every page with a blank line
		text = strings.TrimRight(text, " \t\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	return strings.TrimSpace(b.String()), nil
}

func pdfPageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	return doc.NumPage(), nil
}
