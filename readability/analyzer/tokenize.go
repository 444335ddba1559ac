package analyzer

import (
	"strings"
	"unicode"

	"seotext-backend/readability/model"
)

type span struct {
	text       string
	start, end int
}

func (s span) issue(c model.Category) model.WordIssue {
	return model.WordIssue{Word: s.text, Start: s.start, End: s.end, Category: c}
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// splitSentences returns every run of non-terminators followed by one or more
// terminators. Abbreviations ("z.B.") and decimals ("3.14") split sentences too.
// Text without any terminator is one sentence covering the whole text minus
// surrounding whitespace, so text[Start:End] still equals the sentence text.
func splitSentences(text string) []span {
	var out []span
	i, n := 0, len(text)
	for i < n {
		if isTerminator(text[i]) {
			i++
			continue
		}
		start := i
		for i < n && !isTerminator(text[i]) {
			i++
		}
		if i == n {
			break
		}
		for i < n && isTerminator(text[i]) {
			i++
		}
		if s, ok := trimmedSpan(text, start, i); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		if s, ok := trimmedSpan(text, 0, len(text)); ok {
			out = append(out, s)
		}
	}
	return out
}

// trimmedSpan narrows [start, end) to exclude surrounding whitespace.
func trimmedSpan(text string, start, end int) (span, bool) {
	raw := text[start:end]
	left := strings.TrimLeftFunc(raw, unicode.IsSpace)
	start += len(raw) - len(left)
	trimmed := strings.TrimRightFunc(left, unicode.IsSpace)
	if trimmed == "" {
		return span{}, false
	}
	return span{text: trimmed, start: start, end: start + len(trimmed)}, true
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
		return true
	}
	return false
}

// splitWords returns maximal runs of ASCII and German letters.
func splitWords(text string) []span {
	var out []span
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, span{text: text[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, span{text: text[start:], start: start, end: len(text)})
	}
	return out
}

// countParagraphs counts non-blank blocks separated by two or more newlines.
func countParagraphs(text string) int {
	count := 0
	blockStart := 0
	for i := 0; i < len(text); {
		if text[i] != '\n' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] == '\n' {
			j++
		}
		if j-i >= 2 {
			if strings.TrimSpace(text[blockStart:i]) != "" {
				count++
			}
			blockStart = j
		}
		i = j
	}
	if strings.TrimSpace(text[blockStart:]) != "" {
		count++
	}
	return count
}
