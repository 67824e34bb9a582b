package recommend

import (
	"fmt"
)

// buildRationale renders a human-readable bullet list explaining why the
// selected routine fits the profile. It only restates comparisons the
// classifier and scorer already made; no new inference happens here.
func buildRationale(cp ClassifiedProfile, r Routine) []string {
	var bullets []string

	if r.Level == cp.InferredLevel {
		bullets = append(bullets, fmt.Sprintf("%s level matches your experience", r.Level))
	}
	if r.Goal == cp.RecommendedGoal {
		bullets = append(bullets, fmt.Sprintf("aligned with your %s goal", r.Goal))
	}
	if r.DaysPerWeek <= cp.AvailableDays {
		bullets = append(bullets, fmt.Sprintf("fits your availability of %d days per week", cp.AvailableDays))
	}
	if cp.Age > 50 && r.Intensity == IntensityLow {
		bullets = append(bullets, "low intensity recommended for your age")
	}
	if (cp.BMIClass == BMIOverweight || cp.BMIClass == BMIObese) && r.Goal == GoalWeightLoss {
		bullets = append(bullets, "focused on weight loss based on your BMI")
	}

	if len(bullets) == 0 {
		bullets = append(bullets, "routine compatible with your profile")
	}
	return bullets
}
