package extractor

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

// extractTXT reads the file as UTF-8 and falls back to Latin-1, which accepts
// any byte sequence.
func (e *implExtractor) extractTXT(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.ExtractionError("Error reading TXT file", err)
	}

	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}

	e.logger.Debug(ctx, "%s is not valid UTF-8, decoding as Latin-1", path)
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", domain.ExtractionError("Error decoding TXT file", err)
	}

	return strings.TrimSpace(string(decoded)), nil
}
