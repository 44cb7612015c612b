package programgoal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	goal *ProgramGoal
}

func (f *fakeRepo) Find() (*ProgramGoal, error) {
	return f.goal, nil
}

func (f *fakeRepo) Save(goal *ProgramGoal) error {
	f.goal = goal
	return nil
}

func TestGetOrDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultWhenUnset", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		goal, err := svc.GetOrDefault(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultTargetGrade, goal.TargetGrade)

		target, parseErr := time.Parse("2006-01-02", goal.TargetDate)
		require.NoError(t, parseErr)
		assert.WithinDuration(t, time.Now().Add(3*365*24*time.Hour), target, 48*time.Hour)
	})

	t.Run("StoredGoalWins", func(t *testing.T) {
		repo := &fakeRepo{goal: &ProgramGoal{TargetDate: "2028-09-30", TargetGrade: 1.5}}
		svc := NewService(repo)

		goal, err := svc.GetOrDefault(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2028-09-30", goal.TargetDate)
		assert.Equal(t, 1.5, goal.TargetGrade)
	})
}

func TestUpdateProgramGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsOverride", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		goal, err := svc.Update(ctx, UpdateProgramGoalDTO{TargetDate: "2028-09-30", TargetGrade: 1.8})
		require.NoError(t, err)
		assert.Equal(t, "2028-09-30", goal.TargetDate)
		assert.Equal(t, 1.8, goal.TargetGrade)
		require.NotNil(t, repo.goal)
	})

	t.Run("RejectsGradeOutsideScale", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		_, err := svc.Update(ctx, UpdateProgramGoalDTO{TargetDate: "2028-09-30", TargetGrade: 0.0})
		assert.ErrorIs(t, err, ErrInvalidTargetGrade)
	})

	t.Run("KeepsRawMalformedDate", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		goal, err := svc.Update(ctx, UpdateProgramGoalDTO{TargetDate: "30.09.2028", TargetGrade: 2.0})
		require.NoError(t, err)
		assert.Equal(t, "30.09.2028", goal.TargetDate)
	})
}
