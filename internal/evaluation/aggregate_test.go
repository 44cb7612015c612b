package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradePtr(g float64) *float64 {
	return &g
}

func TestWeightedAverage(t *testing.T) {
	t.Run("WeightsByCredits", func(t *testing.T) {
		units := []Unit{
			{Name: "Mathematik 1", Credits: 6, Grade: gradePtr(1.7)},
			{Name: "Informatik 1", Credits: 6, Grade: gradePtr(2.3)},
		}

		avg := WeightedAverage(units)
		require.NotNil(t, avg)
		assert.InDelta(t, 2.0, *avg, 1e-9)
	})

	t.Run("UnevenWeights", func(t *testing.T) {
		units := []Unit{
			{Credits: 9, Grade: gradePtr(1.0)},
			{Credits: 3, Grade: gradePtr(3.0)},
		}

		avg := WeightedAverage(units)
		require.NotNil(t, avg)
		assert.InDelta(t, 1.5, *avg, 1e-9)
	})

	t.Run("NoUnits", func(t *testing.T) {
		assert.Nil(t, WeightedAverage(nil))
		assert.Nil(t, WeightedAverage([]Unit{}))
	})

	t.Run("OnlyUngradedUnits", func(t *testing.T) {
		units := []Unit{
			{Credits: 6, Grade: nil},
		}

		assert.Nil(t, WeightedAverage(units))
	})

	t.Run("UngradedUnitDoesNotChangeAverage", func(t *testing.T) {
		graded := []Unit{
			{Credits: 6, Grade: gradePtr(1.7)},
			{Credits: 6, Grade: gradePtr(2.3)},
		}
		withUngraded := append(append([]Unit{}, graded...), Unit{Credits: 12, Grade: nil})

		a := WeightedAverage(graded)
		b := WeightedAverage(withUngraded)
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.Equal(t, *a, *b)
	})

	t.Run("ZeroCreditUnitIsExcluded", func(t *testing.T) {
		units := []Unit{
			{Credits: 0, Grade: gradePtr(1.0)},
			{Credits: 6, Grade: gradePtr(2.0)},
		}

		avg := WeightedAverage(units)
		require.NotNil(t, avg)
		assert.InDelta(t, 2.0, *avg, 1e-9)
	})

	t.Run("AllUnitsZeroCredits", func(t *testing.T) {
		units := []Unit{
			{Credits: 0, Grade: gradePtr(1.0)},
		}

		assert.Nil(t, WeightedAverage(units))
	})

	t.Run("AverageIsBoundedByContributingGrades", func(t *testing.T) {
		cases := [][]Unit{
			{{Credits: 3, Grade: gradePtr(1.3)}, {Credits: 6, Grade: gradePtr(2.7)}},
			{{Credits: 5, Grade: gradePtr(4.0)}, {Credits: 10, Grade: gradePtr(1.0)}, {Credits: 2, Grade: gradePtr(6.0)}},
			{{Credits: 6, Grade: gradePtr(2.0)}},
		}

		for _, units := range cases {
			avg := WeightedAverage(units)
			require.NotNil(t, avg)

			min, max := 6.0, 1.0
			for _, u := range units {
				if *u.Grade < min {
					min = *u.Grade
				}
				if *u.Grade > max {
					max = *u.Grade
				}
			}
			assert.GreaterOrEqual(t, *avg, min)
			assert.LessOrEqual(t, *avg, max)
		}
	})
}
