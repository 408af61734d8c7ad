package analysis

import "sort"

// Rank orders scored moves by score descending and truncates to n. The sort
// is stable, so equal scores keep the generator's enumeration order and
// repeated runs over the same position produce the same listing. The input
// slice is left untouched.
func Rank(scored []ScoredMove, n int) []ScoredMove {
	out := make([]ScoredMove, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if n < 0 {
		n = 0
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}
