package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/doc-assist/internal/config"
	"github.com/nguyentantai21042004/doc-assist/internal/converter"
	"github.com/nguyentantai21042004/doc-assist/internal/docx"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/extractor"
	"github.com/nguyentantai21042004/doc-assist/internal/filestore"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/nguyentantai21042004/doc-assist/internal/pdftest"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummarizer struct {
	texts  []string
	result domain.SummaryResult
	points domain.KeyPointsResult
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, opts summarizer.Options) domain.SummaryResult {
	f.texts = append(f.texts, text)
	return f.result
}

func (f *fakeSummarizer) ExtractKeyPoints(ctx context.Context, text string) domain.KeyPointsResult {
	f.texts = append(f.texts, text)
	return f.points
}

func okSummary(text string) domain.SummaryResult {
	return domain.SummaryResult{
		Success:     true,
		Summary:     text,
		SummaryType: domain.StyleComprehensive,
		Language:    domain.LanguageEnglish,
		Model:       "test-model",
		TokensUsed:  10,
	}
}

func newTestProcessor(t *testing.T, sum summarizer.Summarizer) (Processor, *config.Config) {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.Paths.Upload = filepath.Join(root, "uploads")
	cfg.Paths.Output = filepath.Join(root, "outputs")
	cfg.Paths.Inbox = filepath.Join(root, "inbox")
	cfg.Paths.Archived = filepath.Join(root, "archived")
	cfg.Paths.Reports = filepath.Join(root, "reports")

	log := logger.Discard()
	store := filestore.New(afero.NewOsFs(), cfg.Paths.Upload, cfg.Paths.Output, log)
	require.NoError(t, store.EnsureDirs())

	deps := Deps{
		Store:     store,
		Extractor: extractor.New(log),
		Converter: converter.New(log),
	}
	if sum != nil {
		deps.Summarizer = sum
	}
	return New(cfg, deps, log), cfg
}

func TestLoadDocument(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	sess := domain.NewSession()

	got, err := p.LoadDocument(context.Background(), sess, "notes.txt", []byte("  Meeting notes  \n"))
	require.NoError(t, err)

	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "Meeting notes", got.ExtractedText)
	assert.Equal(t, filepath.Dir(got.UploadedFilePath), cfg.Paths.Upload)
	assert.True(t, strings.HasPrefix(filepath.Base(got.UploadedFilePath), "notes_"+sess.ID+"_"))
	assert.Equal(t, []string{got.UploadedFilePath}, got.Files)
	require.NotNil(t, got.Document)
	assert.Equal(t, "notes.txt", got.Document.FileName)
	assert.Equal(t, "TXT", got.Document.FileType)
	assert.Empty(t, sess.Files, "input session is not mutated")
}

func TestLoadDocumentPDF(t *testing.T) {
	p, _ := newTestProcessor(t, nil)

	got, err := p.LoadDocument(context.Background(), domain.NewSession(), "brief.pdf", pdftest.Build("Policy brief", "Appendix"))
	require.NoError(t, err)

	assert.Contains(t, got.ExtractedText, "Policy brief")
	require.NotNil(t, got.Document)
	assert.Equal(t, "2", got.Document.PageCount)
}

func TestLoadDocumentUnsupported(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)

	_, err := p.LoadDocument(context.Background(), domain.NewSession(), "sheet.xlsx", []byte("x"))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeUnsupportedFormat))

	entries, err := os.ReadDir(cfg.Paths.Upload)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing persisted")
}

func TestLoadDocumentExtractionFailure(t *testing.T) {
	p, _ := newTestProcessor(t, nil)

	got, err := p.LoadDocument(context.Background(), domain.NewSession(), "broken.docx", []byte("not a zip"))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeExtraction))
	assert.NotEmpty(t, got.UploadedFilePath, "upload is still tracked for cleanup")
	assert.Empty(t, got.ExtractedText)
}

func TestUseText(t *testing.T) {
	p, _ := newTestProcessor(t, nil)
	prev := okSummary("old")
	sess := domain.Session{ID: "s1", UploadedFilePath: "uploads/a.pdf", Summary: &prev}

	got := p.UseText(sess, "  pasted  ")

	assert.Equal(t, "pasted", got.ExtractedText)
	assert.Empty(t, got.UploadedFilePath)
	assert.Nil(t, got.Summary)
	assert.Equal(t, "s1", got.ID)
}

func TestSummarize(t *testing.T) {
	fake := &fakeSummarizer{result: okSummary("Short summary")}
	p, _ := newTestProcessor(t, fake)
	sess := p.UseText(domain.NewSession(), "Some text")

	got, result := p.Summarize(context.Background(), sess, summarizer.Options{})

	require.True(t, result.Success)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "Short summary", got.Summary.Summary)
	assert.Equal(t, []string{"Some text"}, fake.texts)
}

func TestSummarizeFailureKeepsPreviousSummary(t *testing.T) {
	fake := &fakeSummarizer{result: domain.SummaryResult{Success: false, Error: "Summarization failed: boom"}}
	p, _ := newTestProcessor(t, fake)
	prev := okSummary("Earlier summary")
	sess := p.UseText(domain.NewSession(), "Some text")
	sess.Summary = &prev

	got, result := p.Summarize(context.Background(), sess, summarizer.Options{})

	assert.False(t, result.Success)
	assert.Equal(t, "Summarization failed: boom", result.Error)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "Earlier summary", got.Summary.Summary)
}

func TestSummarizeWithoutCredential(t *testing.T) {
	p, _ := newTestProcessor(t, nil)
	sess := p.UseText(domain.NewSession(), "Some text")

	_, result := p.Summarize(context.Background(), sess, summarizer.Options{})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "API key is required")

	points := p.KeyPoints(context.Background(), sess)
	assert.False(t, points.Success)
	assert.Contains(t, points.Error, "API key is required")
}

func TestKeyPoints(t *testing.T) {
	fake := &fakeSummarizer{points: domain.KeyPointsResult{Success: true, KeyPoints: "- one", TokensUsed: 3}}
	p, _ := newTestProcessor(t, fake)

	result := p.KeyPoints(context.Background(), p.UseText(domain.NewSession(), "Text body"))

	assert.True(t, result.Success)
	assert.Equal(t, "- one", result.KeyPoints)
	assert.Equal(t, []string{"Text body"}, fake.texts)
}

func TestConvertPDF(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)
	sess := domain.NewSession()

	got, result := p.ConvertPDF(context.Background(), sess, "scan.pdf", pdftest.Build("Converted body"))

	require.True(t, result.Success, result.Message)
	assert.Equal(t, cfg.Paths.Output, filepath.Dir(result.OutputPath))
	assert.True(t, strings.HasPrefix(filepath.Base(result.OutputPath), "converted_scan_"+sess.ID+"_"))
	assert.Len(t, got.Files, 2)
	assert.Equal(t, result.OutputPath, got.Files[1])

	paragraphs, err := docx.ReadParagraphs(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(paragraphs, "\n"), "Converted body")
}

func TestConvertPDFFailure(t *testing.T) {
	p, cfg := newTestProcessor(t, nil)

	got, result := p.ConvertPDF(context.Background(), domain.NewSession(), "fake.pdf", []byte("plain text"))

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Message, "Conversion failed: "))
	assert.Len(t, got.Files, 1, "only the upload is tracked")

	entries, err := os.ReadDir(cfg.Paths.Output)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessInboxDocument(t *testing.T) {
	fake := &fakeSummarizer{result: okSummary("## Key facts\n- **Budget** approved")}
	p, cfg := newTestProcessor(t, fake)
	require.NoError(t, os.MkdirAll(cfg.Paths.Inbox, 0755))

	src := filepath.Join(cfg.Paths.Inbox, "minutes.txt")
	require.NoError(t, os.WriteFile(src, []byte("The board approved the budget."), 0644))

	require.NoError(t, p.Process(context.Background(), src))

	mdFiles, err := filepath.Glob(filepath.Join(cfg.Paths.Reports, "minutes_*.md"))
	require.NoError(t, err)
	require.Len(t, mdFiles, 1)
	md, err := os.ReadFile(mdFiles[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "# minutes.txt")
	assert.Contains(t, string(md), "**Budget** approved")

	paragraphs, err := docx.ReadParagraphs(strings.TrimSuffix(mdFiles[0], ".md") + ".docx")
	require.NoError(t, err)
	assert.Contains(t, strings.Join(paragraphs, "\n"), "Budget approved")

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err), "original moved out of the inbox")
	archived, err := filepath.Glob(filepath.Join(cfg.Paths.Archived, "minutes_*.txt"))
	require.NoError(t, err)
	assert.Len(t, archived, 1)
}

func TestProcessSameStemKeepsEveryReport(t *testing.T) {
	fake := &fakeSummarizer{result: okSummary("first summary")}
	p, cfg := newTestProcessor(t, fake)
	require.NoError(t, os.MkdirAll(cfg.Paths.Inbox, 0755))

	first := filepath.Join(cfg.Paths.Inbox, "report.txt")
	require.NoError(t, os.WriteFile(first, []byte("first document"), 0644))
	require.NoError(t, p.Process(context.Background(), first))

	// same name again, as a new drop into the inbox
	fake.result = okSummary("second summary")
	require.NoError(t, os.WriteFile(first, []byte("second document"), 0644))
	require.NoError(t, p.Process(context.Background(), first))

	reports, err := os.ReadDir(cfg.Paths.Reports)
	require.NoError(t, err)
	assert.Len(t, reports, 4)

	mdFiles, err := filepath.Glob(filepath.Join(cfg.Paths.Reports, "report_*.md"))
	require.NoError(t, err)
	require.Len(t, mdFiles, 2)
	var contents []string
	for _, f := range mdFiles {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		contents = append(contents, string(data))
	}
	joined := strings.Join(contents, "\n")
	assert.Contains(t, joined, "first summary")
	assert.Contains(t, joined, "second summary")

	archived, err := os.ReadDir(cfg.Paths.Archived)
	require.NoError(t, err)
	assert.Len(t, archived, 2)
}

func TestProcessSummaryFailure(t *testing.T) {
	fake := &fakeSummarizer{result: domain.SummaryResult{Success: false, Error: "Summarization failed: quota"}}
	p, cfg := newTestProcessor(t, fake)
	require.NoError(t, os.MkdirAll(cfg.Paths.Inbox, 0755))

	src := filepath.Join(cfg.Paths.Inbox, "memo.txt")
	require.NoError(t, os.WriteFile(src, []byte("memo"), 0644))

	err := p.Process(context.Background(), src)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeSummarization))

	_, statErr := os.Stat(src)
	assert.NoError(t, statErr, "original stays in the inbox")
}

func TestProcessRejectsOversizedFile(t *testing.T) {
	p, cfg := newTestProcessor(t, &fakeSummarizer{result: okSummary("x")})
	cfg.Limits.MaxFileSize = 4
	require.NoError(t, os.MkdirAll(cfg.Paths.Inbox, 0755))

	src := filepath.Join(cfg.Paths.Inbox, "big.txt")
	require.NoError(t, os.WriteFile(src, []byte("too large"), 0644))

	err := p.Process(context.Background(), src)
	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
}

func TestProcessMissingFile(t *testing.T) {
	p, cfg := newTestProcessor(t, &fakeSummarizer{})

	err := p.Process(context.Background(), filepath.Join(cfg.Paths.Inbox, "gone.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCleanup(t *testing.T) {
	p, _ := newTestProcessor(t, nil)
	_, err := p.LoadDocument(context.Background(), domain.NewSession(), "fresh.txt", []byte("x"))
	require.NoError(t, err)

	assert.Equal(t, 0, p.Cleanup(context.Background()), "fresh uploads survive")
}
