// Package recommend implements the rule-based routine recommendation engine.
// It classifies a user profile (BMI class, experience level, training goal,
// safe intensity), filters a routine catalog for safety, scores the remaining
// routines for compatibility, and picks a best match with ranked alternatives.
//
// Everything in this package is a pure computation over in-memory values. The
// only I/O boundary is the catalog lookup, which is delegated to a
// CatalogProvider by Service.
package recommend

// Level is a training experience tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Goal is a training objective.
type Goal string

const (
	GoalWeightLoss    Goal = "weight_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalMaintenance   Goal = "maintenance"
	GoalEndurance     Goal = "endurance"
	GoalFlexibility   Goal = "flexibility"
	GoalGeneralHealth Goal = "general_health"
)

// Intensity is a routine effort grade.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// BMIClass is a Body Mass Index band.
type BMIClass string

const (
	BMIUnderweight BMIClass = "underweight"
	BMINormal      BMIClass = "normal"
	BMIOverweight  BMIClass = "overweight"
	BMIObese       BMIClass = "obese"
)

// UserProfile is the self-reported input to the engine. Experience may be nil,
// in which case the level is inferred from the other fields.
type UserProfile struct {
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightM       float64 `json:"height_m"`
	AvailableDays int     `json:"available_days"`
	StatedGoal    Goal    `json:"stated_goal"`
	Experience    *Level  `json:"experience,omitempty"`
}

// ClassifiedProfile is a UserProfile enriched with derived attributes. It is a
// pure function of the profile: identical inputs always classify identically.
type ClassifiedProfile struct {
	UserProfile
	BMI             float64   `json:"bmi"`
	BMIClass        BMIClass  `json:"bmi_class"`
	InferredLevel   Level     `json:"inferred_level"`
	RecommendedGoal Goal      `json:"recommended_goal"`
	SafeIntensity   Intensity `json:"safe_intensity"`
}

// Routine is a catalog entry. The engine treats it as read-only.
type Routine struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Level             Level     `json:"level"`
	Goal              Goal      `json:"goal"`
	Intensity         Intensity `json:"intensity"`
	DaysPerWeek       int       `json:"days_per_week"`
	DurationMinutes   int       `json:"duration_minutes"`
	Exercises         []string  `json:"exercises"`
	Contraindications string    `json:"contraindications,omitempty"`
}

// ScoredRoutine pairs a routine with its compatibility score in [0, 100].
type ScoredRoutine struct {
	Routine Routine `json:"routine"`
	Score   float64 `json:"score"`
}

// SafetyVerdict is the outcome of checking one routine against one profile.
type SafetyVerdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

// Result is the full recommendation bundle for one request.
type Result struct {
	Profile           ClassifiedProfile `json:"profile"`
	Routine           Routine           `json:"routine"`
	Score             float64           `json:"score"`
	Safety            SafetyVerdict     `json:"safety"`
	Rationale         []string          `json:"rationale"`
	Alternatives      []ScoredRoutine   `json:"alternatives"`
	EstimatedCalories int               `json:"estimated_calories"`
}
