package render

import (
	"strings"
	"testing"

	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
)

func span(c model.Category, inner string) string {
	return `<span class="highlight highlight-` + string(c) + `" data-category="` + string(c) + `">` + inner + `</span>`
}

func TestHighlightPassiveMarker(t *testing.T) {
	text := "Es wird."
	got := Highlight(text, analyzer.Analyze(text), model.AllHighlights())

	want := "Es " + span(model.CategoryPassive, "wird") + "."
	if got != want {
		t.Fatalf("unexpected markup\n got: %s\nwant: %s", got, want)
	}
}

func TestHighlightDisabledCategoryEmitsNoMarker(t *testing.T) {
	text := "Das ist halt so. Es ist ja einfach."
	res := analyzer.Analyze(text)
	if len(res.FillWords) == 0 {
		t.Fatalf("expected fill words in analysis")
	}

	cfg := model.AllHighlights()
	cfg.FillWords = false
	got := Highlight(text, res, cfg)
	if strings.Contains(got, "fill-word") {
		t.Fatalf("expected no fill-word marker, got %s", got)
	}

	cfg.FillWords = true
	if n := Counts(Highlight(text, res, cfg))[model.CategoryFillWord]; n != len(res.FillWords) {
		t.Fatalf("expected %d fill-word markers, got %d", len(res.FillWords), n)
	}
}

func TestHighlightComplexBeatsFillAtSameStart(t *testing.T) {
	text := "Das ist eigentlich gut."
	res := analyzer.Analyze(text)

	got := Highlight(text, res, model.AllHighlights())
	if !strings.Contains(got, span(model.CategoryComplexWord, "eigentlich")) {
		t.Fatalf("expected complex-word marker, got %s", got)
	}
	if strings.Contains(got, "fill-word") {
		t.Fatalf("fill-word marker should lose to complex-word, got %s", got)
	}

	cfg := model.AllHighlights()
	cfg.ComplexWords = false
	got = Highlight(text, res, cfg)
	if !strings.Contains(got, span(model.CategoryFillWord, "eigentlich")) {
		t.Fatalf("expected fill-word marker once complex words are off, got %s", got)
	}
}

func TestHighlightNestsWordsInsideSentence(t *testing.T) {
	text := strings.Repeat("Wort ", 20) + "halt."
	res := analyzer.Analyze(text)
	if len(res.LongSentences) != 1 {
		t.Fatalf("expected one long sentence, got %+v", res.LongSentences)
	}

	got := Highlight(text, res, model.AllHighlights())
	open := `<span class="highlight highlight-long-sentence" data-category="long-sentence">`
	if !strings.HasPrefix(got, open) {
		t.Fatalf("expected markup to open with long-sentence span, got %s", got)
	}
	if !strings.HasSuffix(got, span(model.CategoryFillWord, "halt")+".</span>") {
		t.Fatalf("expected fill word nested before sentence close, got %s", got)
	}
	if strings.Count(got, "<span") != strings.Count(got, "</span>") {
		t.Fatalf("unbalanced spans: %s", got)
	}
}

func TestHighlightWordOutsideSentenceHighlightStillRendered(t *testing.T) {
	text := strings.Repeat("Wort ", 21) + "ende. Das ist halt so."
	res := analyzer.Analyze(text)

	got := Highlight(text, res, model.AllHighlights())
	counts := Counts(got)
	if counts[model.CategoryLongSentence] != 1 || counts[model.CategoryFillWord] != 1 {
		t.Fatalf("unexpected counts %+v in %s", counts, got)
	}
	if !strings.Contains(got, "</span> Das ist "+span(model.CategoryFillWord, "halt")+" so.") {
		t.Fatalf("expected fill word after the sentence span, got %s", got)
	}
}

func TestHighlightSameTierSameStartKeepsFirst(t *testing.T) {
	text := "eigentlich"
	res := model.AnalysisResult{
		VeryLongSentences:    []model.SentenceIssue{{Text: text, Start: 0, End: 10, WordCount: 31}},
		LongSentences:        []model.SentenceIssue{{Text: text, Start: 0, End: 10, WordCount: 21}},
		FillWords:            []model.WordIssue{{Word: text, Start: 0, End: 10, Category: model.CategoryFillWord}},
		PassiveConstructions: []model.WordIssue{{Word: "eige", Start: 0, End: 4, Category: model.CategoryPassive}},
	}

	got := Highlight(text, res, model.AllHighlights())
	want := span(model.CategoryVeryLongSentence, span(model.CategoryFillWord, text))
	if got != want {
		t.Fatalf("unexpected markup\n got: %s\nwant: %s", got, want)
	}
}

func TestHighlightEscapesAndBreaksLines(t *testing.T) {
	text := "a < b & \"c\" 'd'\nneu"
	got := Highlight(text, analyzer.Analyze(text), model.HighlightConfig{})

	want := "a &lt; b &amp; &quot;c&quot; &#39;d&#39;<br>neu"
	if got != want {
		t.Fatalf("unexpected markup\n got: %s\nwant: %s", got, want)
	}
}

func TestHighlightNothingEnabledIsEscapedText(t *testing.T) {
	text := "Das Haus wird eigentlich gebaut."
	got := Highlight(text, analyzer.Analyze(text), model.HighlightConfig{})
	if got != text {
		t.Fatalf("expected plain text, got %s", got)
	}
}

func TestHighlightStaleOffsetsDoNotPanic(t *testing.T) {
	res := model.AnalysisResult{
		LongSentences: []model.SentenceIssue{{Start: 2, End: 400}},
		FillWords:     []model.WordIssue{{Start: 50, End: 60}},
	}
	got := Highlight("kurz", res, model.AllHighlights())
	if Strip(got) != "kurz" {
		t.Fatalf("unexpected markup %s", got)
	}
}

func TestStripRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"Hallo.",
		"Das Haus wird gebaut. Es ist eigentlich ganz einfach.",
		"Größe & Maß <b>fett</b>\n\nZweiter Absatz, \"zitiert\" und 'einfach'.",
		strings.Repeat("Verantwortungsbewusstsein ", 32) + "halt wurde.\nEnde",
		"ohne Satzzeichen aber mit vielleicht",
	}
	for _, text := range texts {
		for _, cfg := range []model.HighlightConfig{model.AllHighlights(), {}, {FillWords: true}} {
			markup := Highlight(text, analyzer.Analyze(text), cfg)
			if got := Strip(markup); got != text {
				t.Fatalf("round trip mismatch for %q\n got: %q\nmarkup: %s", text, got, markup)
			}
		}
	}
}
