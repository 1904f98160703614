package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
)

// Process orchestrates the pipeline for one document dropped into the inbox.
// Each call runs in its own session.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	startTime := time.Now()
	sess := domain.NewSession()
	ctx = logger.WithSession(ctx, sess.ID)
	originalFilename := filepath.Base(docPath)

	p.logger.Info(ctx, "Starting document processing: %s", docPath)

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if int64(len(data)) > p.cfg.Limits.MaxFileSize {
		return domain.ValidationError(fmt.Sprintf("%s exceeds the %d byte limit", originalFilename, p.cfg.Limits.MaxFileSize), nil)
	}

	// Step 1: Persist and extract
	sess, err = p.LoadDocument(ctx, sess, originalFilename, data)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	// Step 2: Summarize with the configured defaults
	sess, result := p.Summarize(ctx, sess, summarizer.Options{
		Style:    domain.ParseSummaryStyle(p.cfg.Summary.Style),
		Language: domain.Language(p.cfg.Summary.Language),
	})
	if !result.Success {
		return domain.SummarizationError("summarize "+originalFilename, errors.New(result.Error))
	}

	// Step 3: Write markdown and docx reports
	mdPath, docxPath, err := p.writeReport(ctx, sess.ID, originalFilename, *sess.Summary)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	// Step 4: Move original document to archived folder
	if err := p.moveToArchived(ctx, sess.ID, docPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Processing completed in %s: %s, %s", time.Since(startTime).Round(time.Millisecond), mdPath, docxPath)
	return nil
}
