package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	extensions    []string
	settleDelay   time.Duration
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the inbox directory for new documents and hands
// each one to the handler, at most maxConcurrent at a time. Documents already
// in the inbox are handled first.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensions, ", "))

	existing, err := w.existingDocuments()
	if err != nil {
		w.logger.Warn(ctx, "Could not scan %s: %v", w.inputDir, err)
	}
	for _, path := range existing {
		w.logger.Info(ctx, "Queued existing document: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return w.shutdown(ctx)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isDocumentFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New document detected: %s", event.Name)

			// Small delay to ensure file is fully written
			time.Sleep(w.settleDelay)

			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.shutdown(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch acquires a semaphore slot (blocking if max concurrent is reached)
// and runs the handler in a goroutine.
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		if err := w.handler(ctx, filePath); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
		}
	}()
	return nil
}

func (w *implWatcher) shutdown(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return ctx.Err()
}

func (w *implWatcher) existingDocuments() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if w.isDocumentFile(path) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// isDocumentFile checks if the file has a supported document extension
func (w *implWatcher) isDocumentFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	for _, format := range w.extensions {
		if ext == format {
			return true
		}
	}

	return false
}
