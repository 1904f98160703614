package filestore

import (
	"time"

	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/spf13/afero"
)

type implStore struct {
	fs        afero.Fs
	uploadDir string
	outputDir string
	logger    logger.Logger
	now       func() time.Time
}

// New creates a Store on fs. Pass afero.NewOsFs() for the real filesystem.
func New(fs afero.Fs, uploadDir, outputDir string, log logger.Logger) Store {
	return &implStore{
		fs:        fs,
		uploadDir: uploadDir,
		outputDir: outputDir,
		logger:    log,
		now:       time.Now,
	}
}
