package domain

import (
	"fmt"
	"math"
	"slices"
)

const (
	// PlanName is the fixed name of every generated plan.
	PlanName = "Custom Exercise Plan"
	// PlanDescription is the fixed description of every generated plan.
	PlanDescription = "A personalized exercise plan based on your profile."

	seniorAge    = 65
	highBMILimit = 30.0

	ConditionArthritis = "arthritis"
	ConditionDiabetes  = "diabetes"
)

var (
	seniorExercises    = []string{"Walking", "Tai Chi", "Chair Yoga", "Balance Exercises", "Stretching"}
	highBMIExercises   = []string{"Walking", "Cycling", "Water Aerobics", "Dancing", "Stretching"}
	arthritisExercises = []string{"Chair Yoga", "Tai Chi", "Water Aerobics", "Stretching"}
	diabetesExercises  = []string{"Walking", "Cycling", "Strength Training with Dumbbells"}
)

// PlanRules reports which selection rules contributed to a plan.
type PlanRules struct {
	Senior    bool `json:"senior"`
	HighBMI   bool `json:"high_bmi"`
	Arthritis bool `json:"arthritis"`
	Diabetes  bool `json:"diabetes"`
}

// Names returns the fired rules in evaluation order.
func (r PlanRules) Names() []string {
	var out []string
	if r.Senior {
		out = append(out, "senior")
	}
	if r.HighBMI {
		out = append(out, "high_bmi")
	}
	if r.Arthritis {
		out = append(out, ConditionArthritis)
	}
	if r.Diabetes {
		out = append(out, ConditionDiabetes)
	}
	return out
}

// Selection is a plan together with the facts that produced it.
type Selection struct {
	Plan  ExercisePlan
	BMI   float64
	Rules PlanRules
}

// BMI computes weight(kg) / height(m)^2.
func BMI(weightKg, heightCm float64) (float64, error) {
	if math.IsNaN(heightCm) || math.IsInf(heightCm, 0) || heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg < 0 {
		return 0, fmt.Errorf("%w: weight must not be negative", ErrInvalidProfile)
	}
	meters := heightCm / 100
	return weightKg / (meters * meters), nil
}

// SelectPlan builds the custom exercise plan for a profile.
func SelectPlan(profile UserProfile, exercises ExerciseLookup) (ExercisePlan, error) {
	sel, err := Select(profile, exercises)
	if err != nil {
		return ExercisePlan{}, err
	}
	return sel.Plan, nil
}

// Select applies the age/BMI branch first (senior wins over high BMI), then
// the condition additions, and keeps the first occurrence of each exercise.
// It never mutates the lookup and is safe for concurrent use.
func Select(profile UserProfile, exercises ExerciseLookup) (Selection, error) {
	if profile.Age < 0 {
		return Selection{}, fmt.Errorf("%w: age must not be negative", ErrInvalidProfile)
	}
	bmi, err := BMI(profile.Weight, profile.Height)
	if err != nil {
		return Selection{}, err
	}

	var (
		rules PlanRules
		names []string
	)
	switch {
	case profile.Age >= seniorAge:
		rules.Senior = true
		names = append(names, seniorExercises...)
	case bmi >= highBMILimit:
		rules.HighBMI = true
		names = append(names, highBMIExercises...)
	}

	if slices.Contains(profile.SpecialHealthConditions, ConditionArthritis) {
		rules.Arthritis = true
		names = append(names, arthritisExercises...)
	}
	if slices.Contains(profile.SpecialHealthConditions, ConditionDiabetes) {
		rules.Diabetes = true
		names = append(names, diabetesExercises...)
	}

	selected := make([]Exercise, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ex, err := exercises.Exercise(name)
		if err != nil {
			return Selection{}, fmt.Errorf("resolve %q: %w", name, err)
		}
		selected = append(selected, ex)
	}

	return Selection{
		Plan: ExercisePlan{
			Name:                        PlanName,
			Description:                 PlanDescription,
			Exercises:                   selected,
			Personalized:                true,
			HealthMonitoringIntegration: profile.HealthMonitoringIntegration,
			ProgressTracking:            profile.ProgressTracking,
		},
		BMI:   bmi,
		Rules: rules,
	}, nil
}
