package tts

import (
	"strings"
	"unicode"
)

// terminal punctuation marks, including the Arabic variants: question mark,
// comma, and semicolon.
func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '؟', '،', '؛':
		return true
	}
	return false
}

// splitUtterances cuts text into sentence-like units after terminal
// punctuation followed by whitespace. Empty units are dropped.
func splitUtterances(text string) []string {
	runes := []rune(strings.TrimSpace(text))

	var units []string
	var cur strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			units = append(units, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if isTerminal(runes[i]) && (i+1 >= len(runes) || unicode.IsSpace(runes[i+1])) {
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			flush()
		}
	}
	flush()

	return units
}
