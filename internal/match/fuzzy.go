// Package match scores search queries against achievement names.
package match

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	substringBase  = 1_000_000
	matchPoints    = 10
	adjacentBonus  = 15
	gapPenalty     = 2
	boundaryBonus  = 20
	boundaryMarker = " _-:/(["
)

// Score rates needle against haystack. Both are expected to be normalised
// (lower-cased) by the caller. The second return value is false when the
// needle is blank or is not an in-order subsequence of the haystack.
func Score(haystack, needle string) (int64, bool) {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return 0, false
	}
	if strings.Contains(haystack, needle) {
		return substringBase - int64(len(haystack)-len(needle)), true
	}
	// fuzzy.Match accepts exactly the in-order subsequences, so anything it
	// rejects would also fail the walk below.
	if !fuzzy.Match(needle, haystack) {
		return 0, false
	}

	hay := []rune(haystack)
	var score int64
	first, last := -1, -1
	pos := 0
	for _, want := range needle {
		found := -1
		for ; pos < len(hay); pos++ {
			if hay[pos] == want {
				found = pos
				pos++
				break
			}
		}
		if found < 0 {
			return 0, false
		}
		score += matchPoints
		if last >= 0 {
			if found == last+1 {
				score += adjacentBonus
			} else {
				score -= int64(found-last-1) * gapPenalty
			}
		}
		if wordBoundary(hay, found) {
			score += boundaryBonus
		}
		if first < 0 {
			first = found
		}
		last = found
	}
	return score - int64(first), true
}

func wordBoundary(hay []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := hay[i-1], hay[i]
	if strings.ContainsRune(boundaryMarker, prev) {
		return true
	}
	return isASCIILower(prev) && isASCIIUpper(cur)
}

func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }
func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

// Best returns the index of the highest scoring candidate for query. Names
// and query are lower-cased before scoring; ties keep the earliest candidate.
func Best(candidates []string, query string) (int, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return -1, false
	}
	best := -1
	var bestScore int64
	for i, candidate := range candidates {
		score, ok := Score(strings.ToLower(candidate), query)
		if !ok {
			continue
		}
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}
