package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Level buckets a 0..1 similarity or confidence score for display.
type Level string

const (
	LevelExact  Level = "exact"
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
	LevelNone   Level = "none"
)

// LevenshteinSimilarity returns 1 - distance/maxLen over the lowercased
// inputs, measured in runes. Two empty strings are identical (1); one empty
// string against a non-empty one scores 0.
func LevenshteinSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(max(lenA, lenB))
}

func ConfidenceLevel(score float64) Level {
	switch {
	case score >= 1.0:
		return LevelExact
	case score >= 0.9:
		return LevelHigh
	case score >= 0.7:
		return LevelMedium
	case score > 0.5:
		return LevelLow
	default:
		return LevelNone
	}
}
