package readability

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"seotext-backend/readability/model"
)

var flagCategories = map[string]model.Category{
	"veryLongSentences": model.CategoryVeryLongSentence,
	"longSentences":     model.CategoryLongSentence,
	"complexWords":      model.CategoryComplexWord,
	"fillWords":         model.CategoryFillWord,
	"passiveVoice":      model.CategoryPassive,
}

// ParseFlags builds a HighlightConfig from query parameters. Every category is on
// unless switched off by its flag or listed in a comma-separated "disable" value
// of category names.
func ParseFlags(values url.Values) (model.HighlightConfig, error) {
	cfg := model.AllHighlights()
	for name, category := range flagCategories {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return model.HighlightConfig{}, fmt.Errorf("%s must be a boolean", name)
		}
		cfg.Set(category, on)
	}
	for _, raw := range strings.Split(values.Get("disable"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		category, ok := model.ParseCategory(raw)
		if !ok {
			return model.HighlightConfig{}, fmt.Errorf("unknown category %q", raw)
		}
		cfg.Set(category, false)
	}
	return cfg, nil
}
