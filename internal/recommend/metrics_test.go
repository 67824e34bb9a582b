package recommend_test

import (
	"math"
	"testing"

	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/recommend"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightM  float64
		want     float64
		wantErr  error
	}{
		{name: "reference value", weightKg: 70, heightM: 1.75, want: 22.857, wantErr: nil},
		{name: "obese range", weightKg: 90, heightM: 1.70, want: 31.142, wantErr: nil},
		{name: "zero height", weightKg: 70, heightM: 0, want: 0, wantErr: recommend.ErrInvalidInput},
		{name: "negative height", weightKg: 70, heightM: -1.75, want: 0, wantErr: recommend.ErrInvalidInput},
		{name: "height in centimeters is caller error but still computes", weightKg: 70, heightM: 175, want: 0.002285, wantErr: nil},
		{name: "zero weight", weightKg: 0, heightM: 1.75, want: 0, wantErr: recommend.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recommend.BMI(tt.weightKg, tt.heightM)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("BMI() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BMI() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("BMI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want recommend.BMIClass
	}{
		{bmi: 10, want: recommend.BMIUnderweight},
		{bmi: 18.49, want: recommend.BMIUnderweight},
		{bmi: 18.5, want: recommend.BMINormal},
		{bmi: 22.86, want: recommend.BMINormal},
		{bmi: 24.99, want: recommend.BMINormal},
		{bmi: 25.0, want: recommend.BMIOverweight},
		{bmi: 29.99, want: recommend.BMIOverweight},
		{bmi: 30.0, want: recommend.BMIObese},
		{bmi: 45, want: recommend.BMIObese},
	}
	for _, tt := range tests {
		if got := recommend.ClassifyBMI(tt.bmi); got != tt.want {
			t.Errorf("ClassifyBMI(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

// The classification partitions the real line into four contiguous bands: as
// BMI grows the class index never decreases.
func TestClassifyBMI_Monotonic(t *testing.T) {
	order := map[recommend.BMIClass]int{
		recommend.BMIUnderweight: 0,
		recommend.BMINormal:      1,
		recommend.BMIOverweight:  2,
		recommend.BMIObese:       3,
	}
	prev := -1
	for bmi := 5.0; bmi < 60; bmi += 0.05 {
		class := recommend.ClassifyBMI(bmi)
		idx, ok := order[class]
		if !ok {
			t.Fatalf("ClassifyBMI(%v) returned unknown class %q", bmi, class)
		}
		if idx < prev {
			t.Fatalf("ClassifyBMI not monotonic at %v: class %q", bmi, class)
		}
		prev = idx
	}
}

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		name            string
		durationMinutes int
		intensity       recommend.Intensity
		weightKg        float64
		want            int
	}{
		// int((6.0*3.5*70/200) * 45) = int(7.35*45) = 330
		{name: "medium intensity reference", durationMinutes: 45, intensity: recommend.IntensityMedium, weightKg: 70, want: 330},
		// int((3.5*3.5*70/200) * 30) = int(4.2875*30) = 128
		{name: "low intensity", durationMinutes: 30, intensity: recommend.IntensityLow, weightKg: 70, want: 128},
		// int((8.5*3.5*90/200) * 60) = int(13.3875*60) = 803
		{name: "high intensity", durationMinutes: 60, intensity: recommend.IntensityHigh, weightKg: 90, want: 803},
		// Unrecognized intensity falls back to factor 5.0: int((5*3.5*70/200)*30) = 183
		{name: "unknown intensity uses default factor", durationMinutes: 30, intensity: recommend.Intensity("brutal"), weightKg: 70, want: 183},
		{name: "zero duration", durationMinutes: 0, intensity: recommend.IntensityMedium, weightKg: 70, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommend.EstimateCalories(tt.durationMinutes, tt.intensity, tt.weightKg)
			if got != tt.want {
				t.Errorf("EstimateCalories() = %d, want %d", got, tt.want)
			}
		})
	}
}
