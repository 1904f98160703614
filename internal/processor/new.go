package processor

import (
	"github.com/nguyentantai21042004/doc-assist/internal/config"
	"github.com/nguyentantai21042004/doc-assist/internal/converter"
	"github.com/nguyentantai21042004/doc-assist/internal/extractor"
	"github.com/nguyentantai21042004/doc-assist/internal/filestore"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	store      filestore.Store
	extractor  extractor.Extractor
	converter  converter.Converter
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// Deps groups the components a Processor orchestrates. Summarizer may be nil
// when no credential is configured; summarization calls then fail cleanly.
type Deps struct {
	Store      filestore.Store
	Extractor  extractor.Extractor
	Converter  converter.Converter
	Summarizer summarizer.Summarizer
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		store:      deps.Store,
		extractor:  deps.Extractor,
		converter:  deps.Converter,
		summarizer: deps.Summarizer,
		logger:     log,
	}
}
