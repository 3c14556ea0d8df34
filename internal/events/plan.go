// Package events defines the payloads the wellness service emits.
package events

import "time"

// EventTypePlanGenerated is carried in the event_type message header.
const EventTypePlanGenerated = "plan.generated"

// PlanGenerated is emitted after a custom exercise plan is built.
type PlanGenerated struct {
	EventID                     string    `json:"event_id"`
	PlanName                    string    `json:"plan_name"`
	Exercises                   []string  `json:"exercises"`
	Rules                       []string  `json:"rules,omitempty"`
	BMI                         float64   `json:"bmi"`
	Age                         int       `json:"age"`
	Goals                       []string  `json:"goals,omitempty"`
	Conditions                  []string  `json:"special_health_conditions,omitempty"`
	HealthMonitoringIntegration bool      `json:"health_monitoring_integration"`
	ProgressTracking            bool      `json:"progress_tracking"`
	GeneratedAt                 time.Time `json:"generated_at"`
}
