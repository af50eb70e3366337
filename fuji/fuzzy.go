// Package fuji implements the Fujifilm vendor-extension value types: the
// ~30 enumerations with bit-exact wire encoding and fuzzy-match parsing,
// and the bounded numeric newtypes used by tone/offset properties. The
// protocol code tables (command/response/property codes) live in package
// ptp.
package fuji

import (
	"strings"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// similarityThreshold is the maximum Damerau-Levenshtein edit distance at
// which a parse failure includes a "did you mean" suggestion. Grounded on original_source/src/camera/ptp/input.rs's
// SIMILARITY_THRESHOLD constant.
const similarityThreshold = 8

// clean normalizes a parse candidate: lowercase, then strip everything
// that isn't ASCII alphanumeric. Grounded on
// original_source/src/camera/ptp/input.rs's CleanAlphanumeric::clean.
func clean(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// damerauLevenshtein computes the edit distance between a and b allowing
// insertion, deletion, substitution, and adjacent-transposition, each at
// unit cost.
func damerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				trans := d[i-2][j-2] + cost
				if trans < min {
					min = trans
				}
			}
			d[i][j] = min
		}
	}
	return d[la][lb]
}

// closest returns the choice in choices whose cleaned form is closest to
// the cleaned input, provided the distance is within similarityThreshold.
// ok is false when nothing qualifies.
func closest(input string, choices []string) (best string, ok bool) {
	target := clean(input)
	bestDist := similarityThreshold + 1
	for _, choice := range choices {
		dist := damerauLevenshtein(target, clean(choice))
		if dist < bestDist {
			bestDist = dist
			best = choice
			ok = true
		}
	}
	if bestDist > similarityThreshold {
		return "", false
	}
	return best, ok
}

// parseError builds the Parse-kind error for a failed enum parse: a plain
// "no match" message, or one with a "Did you mean 'X'?" suggestion when a
// fuzzy match is close enough.
func parseError(typeName, input string, choices []string) error {
	if best, ok := closest(input, choices); ok {
		return ptperr.Newf(ptperr.Parse, "%q is not a valid %s. Did you mean %q?", input, typeName, best)
	}
	return ptperr.Newf(ptperr.Parse, "%q is not a valid %s", input, typeName)
}

// matchAlias returns the index of the first group in aliases holding an
// alias whose cleaned form equals the cleaned input.
func matchAlias(input string, aliases [][]string) (int, bool) {
	target := clean(input)
	for i, group := range aliases {
		for _, alias := range group {
			if clean(alias) == target {
				return i, true
			}
		}
	}
	return -1, false
}
