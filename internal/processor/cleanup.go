package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// moveToArchived moves a processed inbox document to the archived folder as
// {stem}_{session}{ext}.
func (p *implProcessor) moveToArchived(ctx context.Context, sessionID, docPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	name := filepath.Base(docPath)
	ext := filepath.Ext(name)
	destPath := filepath.Join(p.cfg.Paths.Archived, strings.TrimSuffix(name, ext)+"_"+sessionID+ext)
	p.logger.Info(ctx, "Archiving: %s -> %s", docPath, destPath)

	if err := os.Rename(docPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
