package analyzer

import "strings"

// nucleus stands in for a diphthong so it counts as a single vowel.
const nucleus = '#'

var diphthongs = [][2]rune{
	{'e', 'i'},
	{'a', 'i'},
	{'a', 'u'},
	{'ä', 'u'},
	{'e', 'u'},
	{'i', 'e'},
	{'o', 'i'},
}

func isGermanLower(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'ß':
		return true
	}
	return false
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'ä', 'ö', 'ü', nucleus:
		return true
	}
	return false
}

// CountSyllables estimates the syllables of a German word by counting vowel
// nuclei. Words of up to three letters always count as one syllable.
func CountSyllables(word string) int {
	cleaned := make([]rune, 0, len(word))
	for _, r := range strings.ToLower(word) {
		if isGermanLower(r) {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return 0
	}
	if len(cleaned) <= 3 {
		return 1
	}

	processed := make([]rune, 0, len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		if i+1 < len(cleaned) && isDiphthong(cleaned[i], cleaned[i+1]) {
			processed = append(processed, nucleus)
			i++
			continue
		}
		processed = append(processed, cleaned[i])
	}

	count := 0
	prevVowel := false
	for _, r := range processed {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isDiphthong(a, b rune) bool {
	for _, d := range diphthongs {
		if d[0] == a && d[1] == b {
			return true
		}
	}
	return false
}
