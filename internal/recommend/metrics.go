package recommend

import (
	"log/slog"

	"github.com/okoskine/routina/internal/errors"
)

// MET-style calorie factors per intensity. The unrecognized-intensity fallback
// matches the catalog loader's historical behaviour.
const (
	calorieFactorLow     = 3.5
	calorieFactorMedium  = 6.0
	calorieFactorHigh    = 8.5
	calorieFactorDefault = 5.0
)

// BMI computes the Body Mass Index from weight in kilograms and height in
// meters. Height must be supplied in meters, not centimeters.
func BMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, errors.Wrap(ErrInvalidInput, "height must be positive meters",
			slog.Float64("height_m", heightM))
	}
	if weightKg <= 0 {
		return 0, errors.Wrap(ErrInvalidInput, "weight must be positive kilograms",
			slog.Float64("weight_kg", weightKg))
	}
	return weightKg / (heightM * heightM), nil
}

// ClassifyBMI maps a BMI value onto its band. Lower bounds are inclusive:
// exactly 18.5 is normal, exactly 25.0 is overweight, exactly 30.0 is obese.
func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// EstimateCalories approximates the calories burned by one session of the
// given duration and intensity for a user of the given weight.
func EstimateCalories(durationMinutes int, intensity Intensity, weightKg float64) int {
	var factor float64
	switch intensity {
	case IntensityLow:
		factor = calorieFactorLow
	case IntensityMedium:
		factor = calorieFactorMedium
	case IntensityHigh:
		factor = calorieFactorHigh
	default:
		factor = calorieFactorDefault
	}

	caloriesPerMinute := factor * 3.5 * weightKg / 200 //nolint:mnd // standard MET formula constants.
	return int(caloriesPerMinute * float64(durationMinutes))
}
