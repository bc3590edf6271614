package numword

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the known word closest to an unknown one, or "" when
// nothing is close enough. Ties resolve to the alphabetically first word.
func Suggest(word string) string {
	if utf8.RuneCountInString(word) < 3 {
		return ""
	}

	best, bestDist := "", -1
	for _, cand := range vocabulary {
		dist := levenshtein.ComputeDistance(word, cand)
		if dist > distanceLimit(utf8.RuneCountInString(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
