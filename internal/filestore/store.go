package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/spf13/afero"
)

func (s *implStore) EnsureDirs() error {
	for _, dir := range []string{s.uploadDir, s.outputDir} {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *implStore) Persist(ctx context.Context, data []byte, originName, sessionID string) (string, error) {
	base, ext := splitName(originName)
	path := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s_%s%s", base, sessionID, domain.NewShortID(), ext))

	if err := s.fs.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", domain.PersistError("Error saving file", err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return "", domain.PersistError("Error saving file", err)
	}

	s.logger.Debug(ctx, "Persisted upload %s (%d bytes) -> %s", originName, len(data), path)
	return path, nil
}

func (s *implStore) OutputPath(originName, sessionID string) string {
	stem, _ := splitName(originName)
	return filepath.Join(s.outputDir, fmt.Sprintf("converted_%s_%s_%s.docx", stem, sessionID, domain.NewShortID()))
}

func (s *implStore) CleanupStale(ctx context.Context, maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)
	removed := 0

	for _, dir := range []string{s.uploadDir, s.outputDir} {
		entries, err := afero.ReadDir(s.fs, dir)
		if err != nil {
			s.logger.Debug(ctx, "Skipping cleanup of %s: %v", dir, err)
			continue
		}

		for _, e := range entries {
			if !e.Mode().IsRegular() || !e.ModTime().Before(cutoff) {
				continue
			}

			path := filepath.Join(dir, e.Name())
			if err := s.fs.Remove(path); err != nil {
				s.logger.Debug(ctx, "Could not remove stale file %s: %v", path, err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info(ctx, "Removed %d stale temporary files", removed)
	}
	return removed
}

// splitName reduces originName to its base name and splits it at the last dot.
func splitName(originName string) (string, string) {
	name := filepath.Base(strings.ReplaceAll(originName, "\\", "/"))
	if name == "." || name == "/" {
		name = "upload"
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
