package analyzer

import "strings"

// Discourse particles that add little information to a sentence.
var fillWords = map[string]struct{}{
	"also":               {},
	"bestimmt":           {},
	"doch":               {},
	"durchaus":           {},
	"eben":               {},
	"echt":               {},
	"eher":               {},
	"eigentlich":         {},
	"einfach":            {},
	"etwa":               {},
	"ganz":               {},
	"gar":                {},
	"gewissermaßen":      {},
	"halt":               {},
	"irgendwie":          {},
	"ja":                 {},
	"letztendlich":       {},
	"mal":                {},
	"natürlich":          {},
	"nun":                {},
	"praktisch":          {},
	"quasi":              {},
	"regelrecht":         {},
	"relativ":            {},
	"schon":              {},
	"selbstverständlich": {},
	"sozusagen":          {},
	"total":              {},
	"vielleicht":         {},
	"wirklich":           {},
	"wohl":               {},
	"ziemlich":           {},
}

// Forms of "werden". A lexical proxy for passive voice, not a parse.
var passiveMarkers = map[string]struct{}{
	"wird":     {},
	"werden":   {},
	"wurde":    {},
	"wurden":   {},
	"worden":   {},
	"geworden": {},
	"werde":    {},
	"wirst":    {},
	"werdet":   {},
}

// IsFillWord reports whether word is a known fill word, ignoring case.
func IsFillWord(word string) bool {
	_, ok := fillWords[strings.ToLower(word)]
	return ok
}

// IsPassiveMarker reports whether word is a form of "werden", ignoring case.
func IsPassiveMarker(word string) bool {
	_, ok := passiveMarkers[strings.ToLower(word)]
	return ok
}
