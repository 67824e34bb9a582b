package recommend

import (
	"github.com/okoskine/routina/internal/errors"
)

// The classifier derives experience level, prioritized goal, and safe
// intensity through ordered guard rules. Rule order is load-bearing: the first
// matching rule wins, and later rules are carve-outs of the default case, not
// competing classifications. Keep the order when editing.

// Classify derives a ClassifiedProfile from a raw user profile.
//
// It fails with ErrMissingProfileData when weight or height is absent and with
// ErrInvalidInput when either is negative.
func Classify(p UserProfile) (ClassifiedProfile, error) {
	if p.WeightKg == 0 || p.HeightM == 0 {
		return ClassifiedProfile{}, errors.Wrap(ErrMissingProfileData,
			"profile must have weight and height")
	}

	bmi, err := BMI(p.WeightKg, p.HeightM)
	if err != nil {
		return ClassifiedProfile{}, err
	}
	bmiClass := ClassifyBMI(bmi)
	level := inferLevel(p.Age, p.AvailableDays, bmiClass)

	return ClassifiedProfile{
		UserProfile:     p,
		BMI:             bmi,
		BMIClass:        bmiClass,
		InferredLevel:   level,
		RecommendedGoal: recommendGoal(p.StatedGoal, bmiClass),
		SafeIntensity:   safeIntensity(p.Age, bmiClass, level),
	}, nil
}

func inferLevel(age, availableDays int, bmiClass BMIClass) Level {
	switch {
	case age > 50:
		return LevelBeginner
	case availableDays < 3:
		return LevelBeginner
	case bmiClass == BMIObese:
		return LevelBeginner
	case availableDays >= 5 && age < 30 && (bmiClass == BMINormal || bmiClass == BMIOverweight):
		return LevelAdvanced
	case availableDays >= 3 && availableDays < 5 && age < 50 && bmiClass != BMIObese:
		return LevelIntermediate
	default:
		return LevelIntermediate
	}
}

func recommendGoal(statedGoal Goal, bmiClass BMIClass) Goal {
	switch {
	case bmiClass == BMIOverweight || bmiClass == BMIObese:
		return GoalWeightLoss
	case bmiClass == BMIUnderweight:
		return GoalMuscleGain
	default:
		return statedGoal
	}
}

func safeIntensity(age int, bmiClass BMIClass, inferredLevel Level) Intensity {
	switch {
	case age > 50:
		return IntensityLow
	case bmiClass == BMIObese:
		return IntensityLow
	case inferredLevel == LevelBeginner && age <= 50:
		return IntensityLow
	case inferredLevel == LevelAdvanced && age < 40:
		return IntensityHigh
	case inferredLevel == LevelIntermediate && age < 50:
		return IntensityMedium
	default:
		return IntensityMedium
	}
}
