package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerText приводит текст к нижнему регистру с полным Unicode-отображением:
// "İ" становится "i̇" (i + U+0307), а не просто "i".
// Caser хранит состояние, поэтому создается на каждый вызов.
func lowerText(s string) string {
	return cases.Lower(language.Und).String(s)
}

// isWordSeparator пробельные символы, включая разделители U+001C..U+001F
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func countWords(s string) int {
	return len(strings.FieldsFunc(s, isWordSeparator))
}
