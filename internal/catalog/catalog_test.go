package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/wellness/internal/domain"
)

func TestDefaultCatalogOrderAndSize(t *testing.T) {
	c := Default()

	exercises := c.Exercises()
	require.Len(t, exercises, 12)
	require.Equal(t, "Walking", exercises[0].Name)
	require.Equal(t, "Dancing", exercises[len(exercises)-1].Name)

	activities := c.Activities()
	require.Len(t, activities, 8)
	require.Equal(t, "Crossword", activities[0].Name)
	require.Equal(t, "Painting or Drawing", activities[len(activities)-1].Name)
}

func TestExerciseLookup(t *testing.T) {
	c := Default()

	ex, err := c.Exercise("Tai Chi")
	require.NoError(t, err)
	require.Equal(t, "Improves balance, reduces stress, enhances mental clarity.", ex.Benefits)

	_, err = c.Exercise("tai chi")
	require.ErrorIs(t, err, domain.ErrExerciseNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStartMessage(t *testing.T) {
	c := Default()

	msg, err := c.StartMessage("Sudoku")
	require.NoError(t, err)
	require.Equal(t, "Opening Sudoku application...", msg)

	_, err = c.StartMessage("UnknownName")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	act, err := c.Activity("Board Games")
	require.NoError(t, err)
	require.Equal(t, "Enjoy strategic thinking with board games.", act.Description)
}

func TestReturnedSlicesDoNotAliasCatalog(t *testing.T) {
	c := Default()

	exercises := c.Exercises()
	exercises[0].Name = "Mutated"
	activities := c.Activities()
	activities[0].Name = "Mutated"

	ex, err := c.Exercise("Walking")
	require.NoError(t, err)
	require.Equal(t, "Walking", ex.Name)
	require.Equal(t, "Walking", c.Exercises()[0].Name)
	require.Equal(t, "Crossword", c.Activities()[0].Name)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Exercise{{Name: "Walking"}, {Name: "Walking"}}, nil)
	require.ErrorContains(t, err, `duplicate exercise "Walking"`)

	_, err = New(nil, []ActivityEntry{{Activity: domain.Activity{Name: "Sudoku"}}, {Activity: domain.Activity{Name: "Sudoku"}}})
	require.ErrorContains(t, err, `duplicate activity "Sudoku"`)

	_, err = New([]domain.Exercise{{Name: "  "}}, nil)
	require.ErrorContains(t, err, "name is required")
}

func TestEveryRuleExerciseExists(t *testing.T) {
	c := Default()
	profiles := []domain.UserProfile{
		{Weight: 70, Height: 170, Age: 70, SpecialHealthConditions: []string{"arthritis", "diabetes"}},
		{Weight: 120, Height: 170, Age: 40, SpecialHealthConditions: []string{"arthritis", "diabetes"}},
	}
	for _, p := range profiles {
		_, err := domain.SelectPlan(p, c)
		require.NoError(t, err)
	}
}
