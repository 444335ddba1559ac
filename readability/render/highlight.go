// Package render turns an analysis result into highlighted HTML markup.
package render

import (
	"strings"
	"unicode/utf8"

	"seotext-backend/readability/model"
)

type tier int

const (
	tierSentence tier = iota
	tierWord
)

type highlight struct {
	start, end int
	category   model.Category
	priority   int
}

// Lower priority wins when several categories start at the same offset.
var priorities = map[model.Category]int{
	model.CategoryVeryLongSentence: 1,
	model.CategoryLongSentence:     2,
	model.CategoryComplexWord:      3,
	model.CategoryFillWord:         4,
	model.CategoryPassive:          5,
}

func tierOf(c model.Category) tier {
	if c == model.CategoryVeryLongSentence || c == model.CategoryLongSentence {
		return tierSentence
	}
	return tierWord
}

// Highlight wraps every enabled issue of result in a category-tagged span and
// escapes the remaining text. Word highlights nest inside sentence highlights.
//
// result must have been computed from exactly this text; offsets from a stale
// analysis produce garbled markup.
func Highlight(text string, result model.AnalysisResult, cfg model.HighlightConfig) string {
	sentences, words := index(collect(result, cfg))

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	for i := 0; i < len(text); {
		if h, ok := sentences[i]; ok {
			end := min(h.end, len(text))
			openSpan(&b, h.category)
			writeRange(&b, text, i, end, words)
			b.WriteString(closeTag)
			i = end
			continue
		}
		if h, ok := words[i]; ok {
			end := min(h.end, len(text))
			openSpan(&b, h.category)
			writeEscaped(&b, text[i:end])
			b.WriteString(closeTag)
			i = end
			continue
		}
		i += writeRune(&b, text, i)
	}

	return strings.ReplaceAll(b.String(), "\n", lineBreak)
}

// collect flattens enabled issues in priority order, each category in order of
// appearance.
func collect(result model.AnalysisResult, cfg model.HighlightConfig) []highlight {
	var out []highlight
	addSentences := func(c model.Category, issues []model.SentenceIssue) {
		if !cfg.Enabled(c) {
			return
		}
		for _, s := range issues {
			out = append(out, highlight{start: s.Start, end: s.End, category: c, priority: priorities[c]})
		}
	}
	addWords := func(c model.Category, issues []model.WordIssue) {
		if !cfg.Enabled(c) {
			return
		}
		for _, w := range issues {
			out = append(out, highlight{start: w.Start, end: w.End, category: c, priority: priorities[c]})
		}
	}

	addSentences(model.CategoryVeryLongSentence, result.VeryLongSentences)
	addSentences(model.CategoryLongSentence, result.LongSentences)
	addWords(model.CategoryComplexWord, result.ComplexWords)
	addWords(model.CategoryFillWord, result.FillWords)
	addWords(model.CategoryPassive, result.PassiveConstructions)
	return out
}

// index keys highlights by start offset per tier. When two highlights of the same
// tier share a start, the first one in list order is kept and the other is dropped.
func index(hs []highlight) (sentences, words map[int]highlight) {
	sentences = make(map[int]highlight)
	words = make(map[int]highlight)
	for _, h := range hs {
		if h.end <= h.start {
			continue
		}
		m := words
		if tierOf(h.category) == tierSentence {
			m = sentences
		}
		if _, taken := m[h.start]; !taken {
			m[h.start] = h
		}
	}
	return sentences, words
}

// writeRange renders text[start:end] with word-level highlights that fit inside it.
func writeRange(b *strings.Builder, text string, start, end int, words map[int]highlight) {
	for j := start; j < end; {
		if h, ok := words[j]; ok && h.end <= end {
			openSpan(b, h.category)
			writeEscaped(b, text[j:h.end])
			b.WriteString(closeTag)
			j = h.end
			continue
		}
		j += writeRune(b, text, j)
	}
}

func writeRune(b *strings.Builder, text string, i int) int {
	r, size := utf8.DecodeRuneInString(text[i:])
	if size == 0 {
		return 1
	}
	if r == utf8.RuneError && size == 1 {
		b.WriteByte(text[i])
		return 1
	}
	writeEscaped(b, text[i:i+size])
	return size
}
