package model

// Category is the stable tag name of a style issue. The names are shared with the
// stylesheet that colors highlights, so they must not change.
type Category string

const (
	CategoryVeryLongSentence Category = "very-long-sentence"
	CategoryLongSentence     Category = "long-sentence"
	CategoryComplexWord      Category = "complex-word"
	CategoryFillWord         Category = "fill-word"
	CategoryPassive          Category = "passive"
)

// Categories lists every category in priority order.
var Categories = []Category{
	CategoryVeryLongSentence,
	CategoryLongSentence,
	CategoryComplexWord,
	CategoryFillWord,
	CategoryPassive,
}

// ParseCategory maps a tag name to its Category.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// SentenceIssue is a flagged sentence. Start and End are byte offsets into the
// analyzed text and text[Start:End] == Text.
type SentenceIssue struct {
	Text      string `json:"text"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	WordCount int    `json:"wordCount"`
}

// WordIssue is a flagged word. Start and End are byte offsets into the analyzed
// text and text[Start:End] == Word.
type WordIssue struct {
	Word     string   `json:"word"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Category Category `json:"category"`
}

// AnalysisResult is the immutable snapshot produced for one input text.
type AnalysisResult struct {
	FleschScore       int     `json:"fleschScore"`
	FleschLevel       string  `json:"fleschLevel"`
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	Syllables         int     `json:"syllables"`
	Characters        int     `json:"characters"`
	Paragraphs        int     `json:"paragraphs"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	AvgWordLength     float64 `json:"avgWordLength"`

	LongSentences        []SentenceIssue `json:"longSentences"`
	VeryLongSentences    []SentenceIssue `json:"veryLongSentences"`
	ComplexWords         []WordIssue     `json:"complexWords"`
	FillWords            []WordIssue     `json:"fillWords"`
	PassiveConstructions []WordIssue     `json:"passiveConstructions"`
}

// IssueCount returns the number of issues reported for a category.
func (r AnalysisResult) IssueCount(c Category) int {
	switch c {
	case CategoryVeryLongSentence:
		return len(r.VeryLongSentences)
	case CategoryLongSentence:
		return len(r.LongSentences)
	case CategoryComplexWord:
		return len(r.ComplexWords)
	case CategoryFillWord:
		return len(r.FillWords)
	case CategoryPassive:
		return len(r.PassiveConstructions)
	default:
		return 0
	}
}
