package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/go-fitz"
	"github.com/nguyentantai21042004/doc-assist/internal/docx"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

const (
	pdfMIME        = "application/pdf"
	successMessage = "PDF successfully converted to DOCX"
)

// ConvertPDFToDOCX converts srcPath into a DOCX at destPath, overwriting it.
func (c *implConverter) ConvertPDFToDOCX(ctx context.Context, srcPath, destPath string) domain.ConversionResult {
	c.logger.Info(ctx, "Converting %s -> %s", srcPath, destPath)

	if err := c.convert(ctx, srcPath, destPath); err != nil {
		c.logger.Error(ctx, "Conversion of %s failed: %v", srcPath, err)
		return domain.ConversionResult{
			Success: false,
			Message: fmt.Sprintf("Conversion failed: %v", err),
		}
	}

	c.logger.Info(ctx, "Converted %s", filepath.Base(destPath))
	return domain.ConversionResult{
		Success:    true,
		OutputPath: destPath,
		Message:    successMessage,
	}
}

func (c *implConverter) convert(ctx context.Context, srcPath, destPath string) error {
	mtype, err := mimetype.DetectFile(srcPath)
	if err != nil {
		return domain.ConversionError("read source", err)
	}
	if !mtype.Is(pdfMIME) {
		return domain.ConversionError(fmt.Sprintf("source is %s, not a PDF", mtype.String()), nil)
	}

	pages, err := readPages(ctx, srcPath)
	if err != nil {
		return err
	}

	// Write beside the destination and rename, so a failed write never
	// leaves a partial file at destPath.
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".convert-*.docx")
	if err != nil {
		return domain.ConversionError("create output", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := docx.WritePages(pages, tmpPath); err != nil {
		return domain.ConversionError("write docx", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return domain.ConversionError("move output into place", err)
	}

	return nil
}

// readPages returns each page's text split into lines, with trailing blank
// lines removed.
func readPages(ctx context.Context, srcPath string) ([]docx.Page, error) {
	doc, err := fitz.New(srcPath)
	if err != nil {
		return nil, domain.ConversionError("open pdf", err)
	}
	defer doc.Close()

	pages := make([]docx.Page, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := doc.Text(i)
		if err != nil {
			return nil, domain.ConversionError(fmt.Sprintf("read page %d", i+1), err)
		}

		lines := strings.Split(strings.TrimRight(text, " \t\r\n"), "\n")
		page := make(docx.Page, 0, len(lines))
		for _, line := range lines {
			page = append(page, strings.TrimRight(line, " \t\r"))
		}
		pages = append(pages, page)
	}

	return pages, nil
}
