package model

// HighlightConfig switches highlighting per category. It is owned by the caller and
// passed fresh on every render.
type HighlightConfig struct {
	VeryLongSentences bool `json:"veryLongSentences" yaml:"very_long_sentences"`
	LongSentences     bool `json:"longSentences" yaml:"long_sentences"`
	ComplexWords      bool `json:"complexWords" yaml:"complex_words"`
	FillWords         bool `json:"fillWords" yaml:"fill_words"`
	PassiveVoice      bool `json:"passiveVoice" yaml:"passive_voice"`
}

// AllHighlights returns a config with every category enabled.
func AllHighlights() HighlightConfig {
	return HighlightConfig{
		VeryLongSentences: true,
		LongSentences:     true,
		ComplexWords:      true,
		FillWords:         true,
		PassiveVoice:      true,
	}
}

// Enabled reports whether highlighting is on for c.
func (h HighlightConfig) Enabled(c Category) bool {
	switch c {
	case CategoryVeryLongSentence:
		return h.VeryLongSentences
	case CategoryLongSentence:
		return h.LongSentences
	case CategoryComplexWord:
		return h.ComplexWords
	case CategoryFillWord:
		return h.FillWords
	case CategoryPassive:
		return h.PassiveVoice
	default:
		return false
	}
}

// Set switches a single category on or off.
func (h *HighlightConfig) Set(c Category, on bool) {
	switch c {
	case CategoryVeryLongSentence:
		h.VeryLongSentences = on
	case CategoryLongSentence:
		h.LongSentences = on
	case CategoryComplexWord:
		h.ComplexWords = on
	case CategoryFillWord:
		h.FillWords = on
	case CategoryPassive:
		h.PassiveVoice = on
	}
}
