package processor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
)

const errNoSummarizer = "Summarization failed: API key is required for summarization"

func (p *implProcessor) LoadDocument(ctx context.Context, sess domain.Session, originName string, data []byte) (domain.Session, error) {
	ext := filepath.Ext(originName)
	if _, err := domain.ParseFormat(ext); err != nil {
		return sess, err
	}

	path, err := p.store.Persist(ctx, data, originName, sess.ID)
	if err != nil {
		return sess, err
	}

	sess = sess.Track(path)
	sess.UploadedFilePath = path
	sess.ExtractedText = ""
	sess.Summary = nil
	sess.Document = nil

	info, err := p.extractor.DocumentInfo(ctx, path, ext)
	if err != nil {
		p.logger.Warn(ctx, "Could not read document info for %s: %v", path, err)
	} else {
		info.FileName = filepath.Base(originName)
		sess.Document = &info
	}

	text, err := p.extractor.ExtractText(ctx, path, ext)
	if err != nil {
		return sess, err
	}
	sess.ExtractedText = text

	return sess, nil
}

func (p *implProcessor) UseText(sess domain.Session, text string) domain.Session {
	sess.ExtractedText = strings.TrimSpace(text)
	sess.UploadedFilePath = ""
	sess.Document = nil
	sess.Summary = nil
	return sess
}

func (p *implProcessor) Summarize(ctx context.Context, sess domain.Session, opts summarizer.Options) (domain.Session, domain.SummaryResult) {
	if p.summarizer == nil {
		return sess, domain.SummaryResult{Success: false, Error: errNoSummarizer}
	}

	result := p.summarizer.Summarize(ctx, sess.ExtractedText, opts)
	if !result.Success {
		// The previous summary, if any, stays on the session.
		p.logger.Warn(ctx, "Summary not produced: %s", result.Error)
		return sess, result
	}

	sess.Summary = &result
	return sess, result
}

func (p *implProcessor) KeyPoints(ctx context.Context, sess domain.Session) domain.KeyPointsResult {
	if p.summarizer == nil {
		return domain.KeyPointsResult{Success: false, Error: "Key point extraction failed: API key is required for summarization"}
	}
	return p.summarizer.ExtractKeyPoints(ctx, sess.ExtractedText)
}

func (p *implProcessor) ConvertPDF(ctx context.Context, sess domain.Session, originName string, data []byte) (domain.Session, domain.ConversionResult) {
	src, err := p.store.Persist(ctx, data, originName, sess.ID)
	if err != nil {
		return sess, domain.ConversionResult{Success: false, Message: "Conversion failed: " + err.Error()}
	}
	sess = sess.Track(src)

	dest := p.store.OutputPath(originName, sess.ID)
	result := p.converter.ConvertPDFToDOCX(ctx, src, dest)
	if result.Success {
		sess = sess.Track(result.OutputPath)
	}

	return sess, result
}

func (p *implProcessor) Cleanup(ctx context.Context) int {
	return p.store.CleanupStale(ctx, p.cfg.Cleanup.MaxAge)
}
