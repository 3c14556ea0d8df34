package api

import (
	"errors"
	"math"
	"strings"

	"example.com/wellness/internal/domain"
)

// StartActivityResponse is returned by GET /activities/{name}/start.
type StartActivityResponse struct {
	Message string `json:"message"`
}

// CustomPlanRequest is the payload for POST /custom-plan/.
// Pointers distinguish a missing field from a zero value. Age is decoded as a
// number so integral values such as 40.0 are accepted.
type CustomPlanRequest struct {
	Weight                      *float64 `json:"weight"`
	Height                      *float64 `json:"height"`
	Age                         *float64 `json:"age"`
	Goals                       []string `json:"goals"`
	SpecialHealthConditions     []string `json:"special_health_conditions"`
	HealthMonitoringIntegration *bool    `json:"health_monitoring_integration"`
	ProgressTracking            *bool    `json:"progress_tracking"`
}

// Validate ensures the required fields are present.
func (r CustomPlanRequest) Validate() error {
	var missing []string
	if r.Weight == nil {
		missing = append(missing, "weight")
	}
	if r.Height == nil {
		missing = append(missing, "height")
	}
	if r.Age == nil {
		missing = append(missing, "age")
	}
	if len(missing) > 0 {
		return errors.New("missing required fields: " + strings.Join(missing, ", "))
	}
	if age := *r.Age; age != math.Trunc(age) || math.Abs(age) > math.MaxInt32 {
		return errors.New("age must be an integer")
	}
	return nil
}

// Profile converts a validated request, defaulting the optional flags to false.
func (r CustomPlanRequest) Profile() domain.UserProfile {
	profile := domain.UserProfile{
		Goals:                   r.Goals,
		SpecialHealthConditions: r.SpecialHealthConditions,
	}
	if r.Weight != nil {
		profile.Weight = *r.Weight
	}
	if r.Height != nil {
		profile.Height = *r.Height
	}
	if r.Age != nil {
		profile.Age = int(*r.Age)
	}
	if r.HealthMonitoringIntegration != nil {
		profile.HealthMonitoringIntegration = *r.HealthMonitoringIntegration
	}
	if r.ProgressTracking != nil {
		profile.ProgressTracking = *r.ProgressTracking
	}
	return profile
}
