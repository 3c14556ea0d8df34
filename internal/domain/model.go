// Package domain defines the catalog records and plan selection rules for the wellness service.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a catalog key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExerciseNotFound is returned when an exercise name is absent from the catalog.
	ErrExerciseNotFound = fmt.Errorf("exercise %w", ErrNotFound)
	// ErrActivityNotFound is returned when an activity name is absent from the catalog.
	ErrActivityNotFound = fmt.Errorf("activity %w", ErrNotFound)
	// ErrInvalidProfile indicates a profile whose numbers cannot produce a body-mass index.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Exercise is a physical exercise in the static catalog.
type Exercise struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Benefits     string `json:"benefits"`
}

// Activity is a cognitive activity in the static catalog.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserProfile carries the inputs for a custom exercise plan.
// Weight is in kilograms, height in centimetres.
type UserProfile struct {
	Weight                      float64  `json:"weight"`
	Height                      float64  `json:"height"`
	Age                         int      `json:"age"`
	Goals                       []string `json:"goals,omitempty"`
	SpecialHealthConditions     []string `json:"special_health_conditions,omitempty"`
	HealthMonitoringIntegration bool     `json:"health_monitoring_integration"`
	ProgressTracking            bool     `json:"progress_tracking"`
}

// ExercisePlan is the personalized output of plan selection.
type ExercisePlan struct {
	Name                        string     `json:"name"`
	Description                 string     `json:"description"`
	Exercises                   []Exercise `json:"exercises"`
	Personalized                bool       `json:"personalized"`
	HealthMonitoringIntegration bool       `json:"health_monitoring_integration"`
	ProgressTracking            bool       `json:"progress_tracking"`
}

// ExerciseLookup resolves exercise names to catalog records.
type ExerciseLookup interface {
	Exercise(name string) (Exercise, error)
}
