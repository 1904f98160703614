package filestore

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestStore(fs afero.Fs) *implStore {
	s := New(fs, "uploads", "outputs", logger.Discard()).(*implStore)
	s.now = func() time.Time { return fixedNow }
	return s
}

// lockedFs refuses to remove the named files, like a file held open on Windows.
type lockedFs struct {
	afero.Fs
	locked map[string]bool
}

func (l lockedFs) Remove(name string) error {
	if l.locked[name] {
		return errors.New("file in use")
	}
	return l.Fs.Remove(name)
}

func TestPersist(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStore(fs)

	path, err := s.Persist(context.Background(), []byte("hello"), "report.final.pdf", "ab12cd34")
	require.NoError(t, err)

	assert.Equal(t, "uploads", filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^report\.final_ab12cd34_[0-9a-f]{8}\.pdf$`), filepath.Base(path))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestPersistSameNameNeverCollides(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestStore(fs)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		path, err := s.Persist(ctx, []byte{byte(i)}, "notes.txt", "sess0001")
		require.NoError(t, err)
		require.False(t, seen[path], "duplicate path %s", path)
		seen[path] = true
	}

	entries, err := afero.ReadDir(fs, "uploads")
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestPersistStripsDirectories(t *testing.T) {
	s := newTestStore(afero.NewMemMapFs())

	tests := []struct {
		origin string
		want   string
	}{
		{"../../etc/passwd", `^passwd_s1_[0-9a-f]{8}$`},
		{`C:\Users\me\doc.docx`, `^doc_s1_[0-9a-f]{8}\.docx$`},
		{"", `^upload_s1_[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		path, err := s.Persist(context.Background(), nil, tt.origin, "s1")
		require.NoError(t, err)
		assert.Equal(t, "uploads", filepath.Dir(path))
		assert.Regexp(t, tt.want, filepath.Base(path))
	}
}

func TestPersistError(t *testing.T) {
	s := newTestStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := s.Persist(context.Background(), []byte("x"), "a.txt", "s1")
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypePersist))
}

func TestOutputPath(t *testing.T) {
	s := newTestStore(afero.NewMemMapFs())

	p1 := s.OutputPath("scan.pdf", "ab12cd34")
	p2 := s.OutputPath("scan.pdf", "ab12cd34")

	assert.Equal(t, "outputs", filepath.Dir(p1))
	assert.Regexp(t, `^converted_scan_ab12cd34_[0-9a-f]{8}\.docx$`, filepath.Base(p1))
	assert.NotEqual(t, p1, p2)
}

func TestEnsureDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, newTestStore(fs).EnsureDirs())

	for _, dir := range []string{"uploads", "outputs"} {
		ok, err := afero.DirExists(fs, dir)
		require.NoError(t, err)
		assert.True(t, ok, dir)
	}
}

func TestCleanupStale(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := lockedFs{Fs: mem, locked: map[string]bool{filepath.Join("uploads", "busy.pdf"): true}}
	s := newTestStore(fs)
	require.NoError(t, s.EnsureDirs())

	files := map[string]time.Duration{
		filepath.Join("uploads", "old.pdf"):   48 * time.Hour,
		filepath.Join("uploads", "busy.pdf"):  48 * time.Hour,
		filepath.Join("uploads", "fresh.txt"): time.Hour,
		filepath.Join("outputs", "old.docx"):  25 * time.Hour,
		filepath.Join("outputs", "new.docx"):  time.Minute,
	}
	for name, age := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte("x"), 0644))
		require.NoError(t, mem.Chtimes(name, fixedNow.Add(-age), fixedNow.Add(-age)))
	}
	require.NoError(t, mem.MkdirAll(filepath.Join("uploads", "nested"), 0755))
	require.NoError(t, mem.Chtimes(filepath.Join("uploads", "nested"), fixedNow.Add(-72*time.Hour), fixedNow.Add(-72*time.Hour)))

	removed := s.CleanupStale(context.Background(), 24*time.Hour)
	assert.Equal(t, 2, removed)

	exists := func(name string) bool {
		ok, err := afero.Exists(mem, name)
		require.NoError(t, err)
		return ok
	}
	assert.False(t, exists(filepath.Join("uploads", "old.pdf")))
	assert.False(t, exists(filepath.Join("outputs", "old.docx")))
	assert.True(t, exists(filepath.Join("uploads", "busy.pdf")), "locked file survives")
	assert.True(t, exists(filepath.Join("uploads", "fresh.txt")))
	assert.True(t, exists(filepath.Join("outputs", "new.docx")))
	assert.True(t, exists(filepath.Join("uploads", "nested")), "directories are not removed")
}

func TestCleanupStaleMissingDirectories(t *testing.T) {
	s := newTestStore(afero.NewMemMapFs())

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, s.CleanupStale(context.Background(), time.Hour))
	})
}
