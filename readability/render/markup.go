package render

import (
	"html"
	"strings"

	"seotext-backend/readability/model"
)

const (
	closeTag  = "</span>"
	lineBreak = "<br>"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func openSpan(b *strings.Builder, c model.Category) {
	b.WriteString(`<span class="highlight highlight-`)
	b.WriteString(string(c))
	b.WriteString(`" data-category="`)
	b.WriteString(string(c))
	b.WriteString(`">`)
}

func writeEscaped(b *strings.Builder, s string) {
	_, _ = escaper.WriteString(b, s)
}

// Strip removes highlight spans from markup, turns line breaks back into newlines
// and unescapes entities. Strip(Highlight(text, ...)) == text.
func Strip(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))
	for i := 0; i < len(markup); {
		if markup[i] != '<' {
			next := strings.IndexByte(markup[i:], '<')
			if next < 0 {
				b.WriteString(markup[i:])
				break
			}
			b.WriteString(markup[i : i+next])
			i += next
			continue
		}
		end := strings.IndexByte(markup[i:], '>')
		if end < 0 {
			b.WriteString(markup[i:])
			break
		}
		if markup[i:i+end+1] == lineBreak {
			b.WriteByte('\n')
		}
		i += end + 1
	}
	return html.UnescapeString(b.String())
}

// Counts returns how many spans of each category markup contains.
func Counts(markup string) map[model.Category]int {
	out := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		if n := strings.Count(markup, `data-category="`+string(c)+`"`); n > 0 {
			out[c] = n
		}
	}
	return out
}
