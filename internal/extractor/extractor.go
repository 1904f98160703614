package extractor

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// ExtractText dispatches to the handler registered for the declared format.
func (e *implExtractor) ExtractText(ctx context.Context, path, ext string) (string, error) {
	format, err := domain.ParseFormat(ext)
	if err != nil {
		return "", err
	}

	h, ok := e.handlers[format]
	if !ok {
		return "", domain.UnsupportedFormat("Unsupported file type: "+string(format), nil)
	}

	e.logger.Debug(ctx, "Extracting %s text from %s", format, path)

	text, err := h(ctx, path)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Extracted %d characters from %s", len(text), filepath.Base(path))
	return text, nil
}

// DocumentInfo reports size and type, plus the page count for PDFs.
func (e *implExtractor) DocumentInfo(ctx context.Context, path, ext string) (domain.DocumentInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return domain.DocumentInfo{}, domain.ExtractionError("Error reading file info", err)
	}

	size := stat.Size()
	info := domain.DocumentInfo{
		FileName:      filepath.Base(path),
		FileSize:      size,
		FileSizeMB:    math.Round(float64(size)/(1024*1024)*100) / 100,
		FileSizeHuman: humanize.IBytes(uint64(size)),
		FileType:      strings.ToUpper(strings.TrimPrefix(ext, ".")),
	}

	if format, err := domain.ParseFormat(ext); err == nil && format == domain.FormatPDF {
		count, err := pdfPageCount(path)
		if err != nil {
			e.logger.Warn(ctx, "Failed to count pages of %s: %v", info.FileName, err)
			info.PageCount = domain.PageCountUnknown
		} else {
			info.PageCount = strconv.Itoa(count)
		}
	}

	return info, nil
}
