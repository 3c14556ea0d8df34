// Package catalog holds the static activity and exercise collections served by the API.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"example.com/wellness/internal/domain"
)

// ActivityEntry pairs an activity with the message shown when it starts.
type ActivityEntry struct {
	Activity     domain.Activity
	StartMessage string
}

// Catalog is an immutable name-indexed view over exercises and activities.
// It is built once and shared across goroutines without locking.
type Catalog struct {
	exercises  []domain.Exercise
	activities []ActivityEntry
	exByName   map[string]int
	actByName  map[string]int
}

// New validates and indexes the given records. Names must be non-empty and unique per collection.
func New(exercises []domain.Exercise, activities []ActivityEntry) (*Catalog, error) {
	c := &Catalog{
		exercises:  append([]domain.Exercise(nil), exercises...),
		activities: append([]ActivityEntry(nil), activities...),
		exByName:   make(map[string]int, len(exercises)),
		actByName:  make(map[string]int, len(activities)),
	}
	for i, ex := range c.exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return nil, fmt.Errorf("exercise %d: name is required", i)
		}
		if _, dup := c.exByName[ex.Name]; dup {
			return nil, fmt.Errorf("duplicate exercise %q", ex.Name)
		}
		c.exByName[ex.Name] = i
	}
	for i, entry := range c.activities {
		if strings.TrimSpace(entry.Activity.Name) == "" {
			return nil, fmt.Errorf("activity %d: name is required", i)
		}
		if _, dup := c.actByName[entry.Activity.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q", entry.Activity.Name)
		}
		c.actByName[entry.Activity.Name] = i
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultExercises, defaultActivities)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in data invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Exercises returns a copy of the exercises in catalog order.
func (c *Catalog) Exercises() []domain.Exercise {
	return append([]domain.Exercise(nil), c.exercises...)
}

// Exercise resolves an exercise by exact name.
func (c *Catalog) Exercise(name string) (domain.Exercise, error) {
	i, ok := c.exByName[name]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%q: %w", name, domain.ErrExerciseNotFound)
	}
	return c.exercises[i], nil
}

// Activities returns a copy of the activities in catalog order.
func (c *Catalog) Activities() []domain.Activity {
	out := make([]domain.Activity, 0, len(c.activities))
	for _, entry := range c.activities {
		out = append(out, entry.Activity)
	}
	return out
}

// Activity resolves an activity by exact name.
func (c *Catalog) Activity(name string) (domain.Activity, error) {
	i, ok := c.actByName[name]
	if !ok {
		return domain.Activity{}, fmt.Errorf("%q: %w", name, domain.ErrActivityNotFound)
	}
	return c.activities[i].Activity, nil
}

// StartMessage returns the launch message for an activity.
func (c *Catalog) StartMessage(name string) (string, error) {
	i, ok := c.actByName[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, domain.ErrActivityNotFound)
	}
	return c.activities[i].StartMessage, nil
}
