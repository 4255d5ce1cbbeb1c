package usecase

import (
	"portfolio-assistant/internal/language"
	"portfolio-assistant/internal/locale"
)

// Classify picks the canned-answer topic for text.
func Classify(text string, lang language.Code) locale.Topic {
	return locale.Classify(text, lang)
}

// FallbackAnswer is the offline reply for text. It never fails and is never
// empty; unsupported languages get the English table.
func FallbackAnswer(text string, lang language.Code) string {
	return locale.Answer(Classify(text, lang), lang)
}

// degradedContent is what lands in the transcript when the completion
// service could not answer.
func degradedContent(text string, lang language.Code) string {
	return FallbackAnswer(text, lang) + "\n\n" + locale.Notice(lang)
}
