package recommend

import (
	"slices"
)

// Safety rejection reasons. The first failing check determines the reason.
const (
	reasonIntensityTooHighForAge = "intensity too high for age"
	reasonTooManyDaysWithObesity = "too many training days to start with obesity"
	reasonRoutineTooAdvanced     = "routine too advanced for current level"
	reasonSafe                   = "routine safe and appropriate"
)

// CheckSafety evaluates one routine against one classified profile. The
// checks short-circuit in order; an unsafe verdict carries the reason of the
// first check that failed.
func CheckSafety(cp ClassifiedProfile, r Routine) SafetyVerdict {
	switch {
	case cp.Age > 60 && r.Intensity == IntensityHigh:
		return SafetyVerdict{Safe: false, Reason: reasonIntensityTooHighForAge}
	case cp.BMIClass == BMIObese && r.DaysPerWeek > 5:
		return SafetyVerdict{Safe: false, Reason: reasonTooManyDaysWithObesity}
	case cp.InferredLevel == LevelBeginner && r.Level == LevelAdvanced:
		return SafetyVerdict{Safe: false, Reason: reasonRoutineTooAdvanced}
	default:
		return SafetyVerdict{Safe: true, Reason: reasonSafe}
	}
}

// filterSafe returns the routines that pass every safety check, preserving
// catalog order, together with the distinct rejection reasons encountered.
// Routines failing a check are excluded entirely, not penalized.
func filterSafe(cp ClassifiedProfile, catalog []Routine) ([]Routine, []string) {
	safe := make([]Routine, 0, len(catalog))
	var precautions []string
	for _, r := range catalog {
		verdict := CheckSafety(cp, r)
		if !verdict.Safe {
			if !slices.Contains(precautions, verdict.Reason) {
				precautions = append(precautions, verdict.Reason)
			}
			continue
		}
		safe = append(safe, r)
	}
	return safe, precautions
}
