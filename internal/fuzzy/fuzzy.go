// Package fuzzy scores catalog names against a search term using a
// weighted edit distance.
package fuzzy

import "strings"

// MaxDistance is the cutoff above which a candidate is discarded.
const MaxDistance = 10

// Score ranks name against term. An exact or prefix match scores 0
// without running the dynamic program; everything else gets the
// weighted edit distance. Comparison is case-insensitive. ok is false
// when the score exceeds MaxDistance.
func Score(term, name string) (int, bool) {
	t := strings.ToLower(term)
	n := strings.ToLower(name)
	if t == n || strings.HasPrefix(n, t) {
		return 0, true
	}
	d := distance([]rune(t), []rune(n))
	return d, d <= MaxDistance
}

// distance is a single-row edit distance over Unicode code points:
// insertions and deletions cost 1, substitutions cost 2, and a matching
// rune immediately following an earlier cost claws 1 back. The scoring
// deliberately differs from textbook Levenshtein.
func distance(a, b []rune) int {
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for _, cb := range b {
		prev := row[0]
		row[0]++
		for i, ca := range a {
			var cur int
			if ca == cb {
				cur = prev
				if cur > 0 {
					cur--
				}
			} else {
				cur = min(prev+2, row[i]+1, row[i+1]+1)
			}
			prev = row[i+1]
			row[i+1] = cur
		}
	}
	return row[len(a)]
}
