package recommend

// Compatibility score weights. The contributions are independent and additive;
// the only normalization is the final clamp to [0, 100].
const (
	levelMatchPoints     = 40.0
	goalMatchPoints      = 30.0
	dayFitPoints         = 20.0
	intensityMatchPoints = 10.0
	dayOveragePenalty    = 5.0
	maxScore             = 100.0
)

// Score computes the compatibility between a routine and a classified profile
// as a deterministic weighted-match heuristic in [0, 100]. It has no
// probabilistic interpretation.
func Score(r Routine, cp ClassifiedProfile) float64 {
	score := 0.0

	if r.Level == cp.InferredLevel {
		score += levelMatchPoints
	}
	if r.Goal == cp.RecommendedGoal {
		score += goalMatchPoints
	}
	if r.DaysPerWeek <= cp.AvailableDays {
		score += dayFitPoints
	} else {
		score += max(0, dayFitPoints-dayOveragePenalty*float64(r.DaysPerWeek-cp.AvailableDays))
	}
	if r.Intensity == cp.SafeIntensity {
		score += intensityMatchPoints
	}

	return min(maxScore, max(0, score))
}

// scoreAll maps every routine to a ScoredRoutine, preserving input order.
func scoreAll(routines []Routine, cp ClassifiedProfile) []ScoredRoutine {
	scored := make([]ScoredRoutine, 0, len(routines))
	for _, r := range routines {
		scored = append(scored, ScoredRoutine{Routine: r, Score: Score(r, cp)})
	}
	return scored
}
