package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a new Watcher instance with concurrency control. extensions
// lists the accepted file extensions, with or without a leading dot.
func New(inputDir string, extensions []string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		exts = append(exts, strings.TrimPrefix(strings.ToLower(e), "."))
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		extensions:    exts,
		settleDelay:   defaultSettleDelay,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
