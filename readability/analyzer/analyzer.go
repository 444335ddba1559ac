// Package analyzer computes German readability metrics and style issues for a text.
//
// Analyze is pure and total: every input, including empty or pathological text,
// yields a structurally valid result. All issue offsets are byte offsets into the
// input string, so text[issue.Start:issue.End] reproduces the stored issue text.
package analyzer

import (
	"math"
	"strings"
	"unicode/utf8"

	"seotext-backend/readability/model"
)

const (
	longSentenceWords     = 20
	veryLongSentenceWords = 30
	complexWordSyllables  = 3
)

// NoLevel is reported for texts that cannot be scored.
const NoLevel = "-"

// Analyze tokenizes text and returns its metrics and style issues.
//
// Text without words, such as "...", is reported unscored: FleschScore 0 and
// FleschLevel NoLevel. The max(..., 1) guards of the formula would otherwise rate
// punctuation as "Sehr leicht".
func Analyze(text string) model.AnalysisResult {
	res := emptyResult()
	if strings.TrimSpace(text) == "" {
		return res
	}

	sentences := splitSentences(text)
	words := splitWords(text)

	res.Sentences = len(sentences)
	res.Words = len(words)
	res.Characters = utf8.RuneCountInString(text)
	res.Paragraphs = countParagraphs(text)

	letters := 0
	for _, w := range words {
		letters += utf8.RuneCountInString(w.text)

		syl := CountSyllables(w.text)
		res.Syllables += syl

		if syl >= complexWordSyllables {
			res.ComplexWords = append(res.ComplexWords, w.issue(model.CategoryComplexWord))
		}
		if IsFillWord(w.text) {
			res.FillWords = append(res.FillWords, w.issue(model.CategoryFillWord))
		}
		if IsPassiveMarker(w.text) {
			res.PassiveConstructions = append(res.PassiveConstructions, w.issue(model.CategoryPassive))
		}
	}

	for _, s := range sentences {
		count := len(strings.Fields(s.text))
		issue := model.SentenceIssue{Text: s.text, Start: s.start, End: s.end, WordCount: count}
		switch {
		case count > veryLongSentenceWords:
			res.VeryLongSentences = append(res.VeryLongSentences, issue)
		case count > longSentenceWords:
			res.LongSentences = append(res.LongSentences, issue)
		}
	}

	if res.Words > 0 {
		res.AvgWordLength = round1(float64(letters) / float64(res.Words))
		res.AvgSentenceLength = round1(float64(res.Words) / float64(max(res.Sentences, 1)))
		res.FleschScore = FleschScore(res.Words, res.Sentences, res.Syllables)
		res.FleschLevel = Level(res.FleschScore)
	}

	return res
}

// FleschScore applies the German Flesch variant (180 - ASL - 58.5*ASW) and clamps
// the result to 0..100.
func FleschScore(words, sentences, syllables int) int {
	asl := float64(words) / float64(max(sentences, 1))
	asw := float64(syllables) / float64(max(words, 1))
	score := 180 - asl - 58.5*asw
	return int(math.Round(clamp(score, 0, 100)))
}

var levels = []struct {
	min   int
	label string
}{
	{80, "Sehr leicht"},
	{70, "Leicht"},
	{60, "Mittel"},
	{50, "Mittelschwer"},
	{40, "Schwer"},
	{30, "Sehr schwer"},
}

// Level maps a Flesch score to its German readability label.
func Level(score int) string {
	for _, l := range levels {
		if score >= l.min {
			return l.label
		}
	}
	return "Extrem schwer"
}

func emptyResult() model.AnalysisResult {
	return model.AnalysisResult{
		FleschLevel:          NoLevel,
		LongSentences:        []model.SentenceIssue{},
		VeryLongSentences:    []model.SentenceIssue{},
		ComplexWords:         []model.WordIssue{},
		FillWords:            []model.WordIssue{},
		PassiveConstructions: []model.WordIssue{},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
