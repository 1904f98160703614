package converter

import (
	"context"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// Converter renders PDF documents as editable DOCX files.
type Converter interface {
	// ConvertPDFToDOCX never returns an error; failures are reported in the result.
	ConvertPDFToDOCX(ctx context.Context, srcPath, destPath string) domain.ConversionResult
}
