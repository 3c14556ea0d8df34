package domain_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/wellness/internal/catalog"
	"example.com/wellness/internal/domain"
	"example.com/wellness/internal/events"
)

func TestCreateCustomPlanPublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	fixed := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	service := domain.NewService(catalog.Default(), pub, domain.WithClock(func() time.Time { return fixed }))

	plan, err := service.CreateCustomPlan(context.Background(), domain.UserProfile{
		Weight:                  60,
		Height:                  170,
		Age:                     30,
		Goals:                   []string{"stamina"},
		SpecialHealthConditions: []string{"diabetes"},
		ProgressTracking:        true,
	})
	require.NoError(t, err)
	require.Len(t, plan.Exercises, 3)
	require.True(t, plan.ProgressTracking)

	require.Len(t, pub.events, 1)
	evt := pub.events[0]
	require.NotEmpty(t, evt.EventID)
	require.Equal(t, domain.PlanName, evt.PlanName)
	require.Equal(t, []string{"Walking", "Cycling", "Strength Training with Dumbbells"}, evt.Exercises)
	require.Equal(t, []string{"diabetes"}, evt.Rules)
	require.Equal(t, []string{"stamina"}, evt.Goals)
	require.Equal(t, 30, evt.Age)
	require.InDelta(t, 20.76, evt.BMI, 0.01)
	require.Equal(t, fixed, evt.GeneratedAt)
}

func TestCreateCustomPlanSurvivesPublishFailure(t *testing.T) {
	var buf bytes.Buffer
	pub := &recordingPublisher{err: errors.New("broker down")}
	service := domain.NewService(catalog.Default(), pub, domain.WithLogger(log.New(&buf, "", 0)))

	plan, err := service.CreateCustomPlan(context.Background(), domain.UserProfile{Weight: 90, Height: 160, Age: 40})
	require.NoError(t, err)
	require.Len(t, plan.Exercises, 5)
	require.Contains(t, buf.String(), "broker down")
}

func TestCreateCustomPlanInvalidProfileSkipsPublish(t *testing.T) {
	pub := &recordingPublisher{}
	service := domain.NewService(catalog.Default(), pub)

	_, err := service.CreateCustomPlan(context.Background(), domain.UserProfile{Weight: 90, Height: 0, Age: 40})
	require.ErrorIs(t, err, domain.ErrInvalidProfile)
	require.Empty(t, pub.events)
}

func TestServiceCatalogOperations(t *testing.T) {
	service := domain.NewService(catalog.Default(), nil)
	ctx := context.Background()

	names := service.ListExerciseNames(ctx)
	require.Len(t, names, 12)
	require.Equal(t, "Walking", names[0])
	require.Equal(t, "Yoga", names[1])

	require.Len(t, service.ListActivities(ctx), 8)

	msg, err := service.StartActivity(ctx, "Crossword")
	require.NoError(t, err)
	require.Equal(t, "Opening crossword puzzle application...", msg)

	_, err = service.StartActivity(ctx, "UnknownName")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	ex, err := service.GetExercise(ctx, "Pilates")
	require.NoError(t, err)
	require.Equal(t, "Pilates", ex.Name)

	_, err = service.GetExercise(ctx, "Parkour")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

type recordingPublisher struct {
	events []events.PlanGenerated
	err    error
}

func (p *recordingPublisher) PublishPlanGenerated(_ context.Context, evt events.PlanGenerated) error {
	p.events = append(p.events, evt)
	return p.err
}
