package main

import (
	"encoding/json"
	"fmt"
	"io"

	"seotext-backend/readability/model"
)

const pageHead = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Lesbarkeit</title>
<style>
body { font-family: sans-serif; line-height: 1.6; max-width: 48rem; margin: 2rem auto; }
.highlight-very-long-sentence { background: #f8c9c9; }
.highlight-long-sentence { background: #fde8c4; }
.highlight-complex-word { text-decoration: underline wavy #7a4fd6; }
.highlight-fill-word { background: #d8ecff; }
.highlight-passive { background: #d5f2d5; }
</style>
</head>
<body>
`

const pageTail = `
</body>
</html>
`

func writeJSON(w io.Writer, result model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeHTML(w io.Writer, markup string) error {
	_, err := io.WriteString(w, pageHead+markup+pageTail)
	return err
}

func writeSummary(w io.Writer, result model.AnalysisResult, cfg model.HighlightConfig) error {
	score := "-"
	if result.Words > 0 {
		score = fmt.Sprintf("%d", result.FleschScore)
	}
	if _, err := fmt.Fprintf(w, "Flesch: %s (%s)\nWörter: %d  Sätze: %d  Absätze: %d\n",
		score, result.FleschLevel, result.Words, result.Sentences, result.Paragraphs); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Ø Satzlänge: %.1f  Ø Wortlänge: %.1f\n",
		result.AvgSentenceLength, result.AvgWordLength); err != nil {
		return err
	}
	for _, c := range model.Categories {
		if !cfg.Enabled(c) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-20s %d\n", string(c)+":", result.IssueCount(c)); err != nil {
			return err
		}
	}
	return nil
}
