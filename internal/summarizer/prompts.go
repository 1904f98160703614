package summarizer

import "github.com/nguyentantai21042004/doc-assist/internal/domain"

const (
	summarySystemPrompt = "You are an expert multilingual document analyst. Provide clear, accurate, and well-structured summaries in the requested language. You are proficient in English, Khmer (ភាសាខ្មែរ), and other languages."

	keyPointsSystemPrompt = "You are an expert at identifying key information in documents."
	keyPointsPrompt       = "Extract the key points, main topics, and important details from this document:"
)

var languageInstructions = map[domain.Language]string{
	domain.LanguageEnglish: "",
	domain.LanguageKhmer:   "Please provide the summary in Khmer language (ភាសាខ្មែរ). ",
	domain.LanguageBoth:    "Please provide the summary in both English and Khmer language (ភាសាខ្មែរ), clearly separating each language section. ",
}

var styleInstructions = map[domain.SummaryStyle]string{
	domain.StyleBrief:         "Provide a brief 2-3 sentence summary of the following document:",
	domain.StyleComprehensive: "Provide a comprehensive summary of the following document, covering all main points and key details:",
	domain.StyleBulletPoints:  "Summarize the following document in clear bullet points, highlighting the main ideas:",
	domain.StyleExecutive:     "Create an executive summary of the following document, suitable for business stakeholders:",
}

// buildSummaryPrompt returns the user message for style and language. Callers
// pass an already normalized style and language.
func buildSummaryPrompt(style domain.SummaryStyle, lang domain.Language, text string) string {
	return languageInstructions[lang] + styleInstructions[style] + "\n\n" + text
}

func buildKeyPointsPrompt(text string) string {
	return keyPointsPrompt + "\n\n" + text
}
