package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-assist/internal/docx"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

// writeReport stores the summary as {stem}_{session}.md and {stem}_{session}.docx
// in the reports dir.
func (p *implProcessor) writeReport(ctx context.Context, sessionID, originalFilename string, summary domain.SummaryResult) (string, string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Reports, 0755); err != nil {
		return "", "", fmt.Errorf("create reports dir: %w", err)
	}

	stem := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename)) + "_" + sessionID

	md := fmt.Sprintf("# %s\n\n_%s · %s · %s · %d tokens_\n\n%s\n",
		originalFilename,
		time.Now().Format("2006-01-02 15:04"),
		summary.SummaryType,
		summary.Language,
		summary.TokensUsed,
		summary.Summary,
	)

	mdPath := filepath.Join(p.cfg.Paths.Reports, stem+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Reports, stem+".docx")
	if err := docx.WriteMarkdown(originalFilename, summary.Summary, docxPath); err != nil {
		return "", "", fmt.Errorf("write %s: %w", docxPath, err)
	}

	p.logger.Debug(ctx, "Report written: %s", mdPath)
	return mdPath, docxPath, nil
}
