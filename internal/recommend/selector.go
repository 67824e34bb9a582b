package recommend

import (
	"cmp"
	"slices"
)

// DefaultAlternativesLimit is the number of alternatives returned when the
// caller does not ask for a specific count.
const DefaultAlternativesLimit = 3

// rank sorts scored routines by descending score. Equal scores are broken by
// lower routine ID so the ordering never depends on incidental catalog order.
func rank(scored []ScoredRoutine) []ScoredRoutine {
	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b ScoredRoutine) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Routine.ID, b.Routine.ID)
	})
	return ranked
}

// selectTop picks the primary recommendation and up to limit alternatives from
// a ranked list. The caller guarantees the list is non-empty. Alternatives
// exclude the primary routine by ID.
func selectTop(ranked []ScoredRoutine, limit int) (ScoredRoutine, []ScoredRoutine) {
	primary := ranked[0]

	alternatives := make([]ScoredRoutine, 0, limit)
	for _, sr := range ranked[1:] {
		if len(alternatives) == limit {
			break
		}
		if sr.Routine.ID == primary.Routine.ID {
			continue
		}
		alternatives = append(alternatives, sr)
	}
	return primary, alternatives
}
