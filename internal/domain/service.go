package domain

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/wellness/internal/events"
	"example.com/wellness/internal/observability"
	"example.com/wellness/internal/publisher"
)

// Catalog exposes the read-only activity and exercise collections.
type Catalog interface {
	ExerciseLookup
	Exercises() []Exercise
	Activities() []Activity
	StartMessage(activityName string) (string, error)
}

// Service contains business logic.
type Service struct {
	catalog   Catalog
	publisher publisher.Publisher
	logger    *log.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService constructs a new Service.
func NewService(catalog Catalog, pub publisher.Publisher, opts ...Option) *Service {
	if pub == nil {
		pub = publisher.NoopPublisher{}
	}
	s := &Service{
		catalog:   catalog,
		publisher: pub,
		logger:    log.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns every activity in catalog order.
func (s *Service) ListActivities(context.Context) []Activity {
	return s.catalog.Activities()
}

// StartActivity returns the launch message for an activity.
func (s *Service) StartActivity(_ context.Context, name string) (string, error) {
	msg, err := s.catalog.StartMessage(name)
	if err != nil {
		observability.RecordCatalogMiss("activity")
		return "", err
	}
	return msg, nil
}

// ListExerciseNames returns exercise names in catalog order.
func (s *Service) ListExerciseNames(context.Context) []string {
	exercises := s.catalog.Exercises()
	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		names = append(names, ex.Name)
	}
	return names
}

// GetExercise retrieves an exercise by name.
func (s *Service) GetExercise(_ context.Context, name string) (Exercise, error) {
	ex, err := s.catalog.Exercise(name)
	if err != nil {
		observability.RecordCatalogMiss("exercise")
		return Exercise{}, err
	}
	return ex, nil
}

// CreateCustomPlan selects a plan for the profile and announces it downstream.
// A failed publish is logged; the plan is still returned.
func (s *Service) CreateCustomPlan(ctx context.Context, profile UserProfile) (ExercisePlan, error) {
	sel, err := Select(profile, s.catalog)
	if err != nil {
		return ExercisePlan{}, err
	}
	rules := sel.Rules.Names()
	observability.RecordPlanGenerated(rules, len(sel.Plan.Exercises))

	names := make([]string, 0, len(sel.Plan.Exercises))
	for _, ex := range sel.Plan.Exercises {
		names = append(names, ex.Name)
	}
	evt := events.PlanGenerated{
		EventID:                     uuid.NewString(),
		PlanName:                    sel.Plan.Name,
		Exercises:                   names,
		Rules:                       rules,
		BMI:                         sel.BMI,
		Age:                         profile.Age,
		Goals:                       profile.Goals,
		Conditions:                  profile.SpecialHealthConditions,
		HealthMonitoringIntegration: profile.HealthMonitoringIntegration,
		ProgressTracking:            profile.ProgressTracking,
		GeneratedAt:                 s.now(),
	}
	if err := s.publisher.PublishPlanGenerated(ctx, evt); err != nil {
		s.logger.Printf("publish plan event %s: %v", evt.EventID, err)
	}
	return sel.Plan, nil
}
