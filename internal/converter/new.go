package converter

import (
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
)

type implConverter struct {
	logger logger.Logger
}

// New creates a Converter backed by MuPDF text extraction and godocx.
func New(log logger.Logger) Converter {
	return &implConverter{logger: log}
}
