package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Format is a supported input document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// SupportedFormats lists every format the extractor can handle.
var SupportedFormats = []Format{FormatPDF, FormatDOCX, FormatTXT}

// ParseFormat normalizes a declared extension (".PDF", "pdf", ...) into a Format.
func ParseFormat(ext string) (Format, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(ext)), ".", "")
	for _, f := range SupportedFormats {
		if Format(normalized) == f {
			return f, nil
		}
	}
	return "", UnsupportedFormat("Unsupported file type: "+normalized, nil)
}

// PageCountUnknown is reported when a PDF cannot be opened to count pages.
const PageCountUnknown = "Unknown"

// DocumentInfo describes an uploaded document for display.
type DocumentInfo struct {
	FileName      string  `json:"file_name"`
	FileSize      int64   `json:"file_size"`
	FileSizeMB    float64 `json:"file_size_mb"`
	FileSizeHuman string  `json:"file_size_human"`
	FileType      string  `json:"file_type"`
	PageCount     string  `json:"page_count,omitempty"`
}

// SummaryStyle selects the instruction template sent to the model.
type SummaryStyle string

const (
	StyleBrief         SummaryStyle = "brief"
	StyleComprehensive SummaryStyle = "comprehensive"
	StyleBulletPoints  SummaryStyle = "bullet_points"
	StyleExecutive     SummaryStyle = "executive"
)

// ParseSummaryStyle returns the matching style, or StyleComprehensive for
// anything it does not recognize.
func ParseSummaryStyle(s string) SummaryStyle {
	switch style := SummaryStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case StyleBrief, StyleComprehensive, StyleBulletPoints, StyleExecutive:
		return style
	default:
		return StyleComprehensive
	}
}

// Language is the requested output language of a summary.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKhmer   Language = "km"
	LanguageBoth    Language = "both"
)

// SummaryResult is returned by every summarization call.
type SummaryResult struct {
	Success     bool         `json:"success"`
	Summary     string       `json:"summary"`
	Error       string       `json:"error,omitempty"`
	SummaryType SummaryStyle `json:"summary_type,omitempty"`
	Language    Language     `json:"language,omitempty"`
	Model       string       `json:"model,omitempty"`
	TokensUsed  int          `json:"tokens_used"`
}

// KeyPointsResult is returned by key point extraction.
type KeyPointsResult struct {
	Success    bool   `json:"success"`
	KeyPoints  string `json:"key_points"`
	Error      string `json:"error,omitempty"`
	TokensUsed int    `json:"tokens_used"`
}

// ConversionResult is returned by PDF to DOCX conversion.
type ConversionResult struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	Message    string `json:"message"`
}

// Session carries the per-user state of one pipeline run. Pipeline calls take
// a Session and return the updated copy.
type Session struct {
	ID               string         `json:"session_id"`
	UploadedFilePath string         `json:"uploaded_file_path,omitempty"`
	Document         *DocumentInfo  `json:"document,omitempty"`
	ExtractedText    string         `json:"-"`
	Summary          *SummaryResult `json:"summary,omitempty"`
	Files            []string       `json:"files,omitempty"`
}

// NewSession returns a session with a fresh 8 character identifier.
func NewSession() Session {
	return Session{ID: NewShortID()}
}

// NewShortID returns the first 8 hex characters of a random UUID.
func NewShortID() string {
	return uuid.NewString()[:8]
}

// Track records a file created on behalf of the session.
func (s Session) Track(path string) Session {
	files := make([]string, 0, len(s.Files)+1)
	files = append(files, s.Files...)
	s.Files = append(files, path)
	return s
}
