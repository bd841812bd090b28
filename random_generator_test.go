package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomGenerator(t *testing.T) {
	gen := NewSecureRandomGenerator()

	t.Run("范围生成正确性", func(t *testing.T) {
		for iter := 0; iter < 1000; iter++ {
			result, err := gen.GenerateInRange(1, 45)
			require.NoError(t, err)
			require.GreaterOrEqual(t, result, 1)
			require.LessOrEqual(t, result, 45)
		}
	})

	t.Run("单值范围", func(t *testing.T) {
		result, err := gen.GenerateInRange(7, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, result)
	})

	t.Run("无效范围", func(t *testing.T) {
		_, err := gen.GenerateInRange(10, 1)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestSecureRandomGenerator_PickUnique(t *testing.T) {
	gen := NewSecureRandomGenerator()

	t.Run("distinct_and_in_range", func(t *testing.T) {
		for iter := 0; iter < 500; iter++ {
			picked, err := gen.PickUnique(NumberMin, NumberMax, NumberCount)
			require.NoError(t, err)
			require.Len(t, picked, NumberCount)

			seen := make(map[int]bool, NumberCount)
			for _, n := range picked {
				require.True(t, InNumberRange(n), "number %d out of range", n)
				require.False(t, seen[n], "duplicate number %d in %v", n, picked)
				seen[n] = true
			}
		}
	})

	t.Run("whole_range", func(t *testing.T) {
		picked, err := gen.PickUnique(1, 5, 5)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, picked)
	})

	t.Run("zero_count", func(t *testing.T) {
		picked, err := gen.PickUnique(1, 45, 0)
		require.NoError(t, err)
		assert.Empty(t, picked)
	})

	t.Run("count_exceeds_range", func(t *testing.T) {
		_, err := gen.PickUnique(1, 5, 6)
		assert.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("every_number_reachable", func(t *testing.T) {
		seen := make(map[int]bool, NumberMax)
		for iter := 0; iter < 2000; iter++ {
			picked, err := gen.PickUnique(NumberMin, NumberMax, NumberCount)
			require.NoError(t, err)
			for _, n := range picked {
				seen[n] = true
			}
		}
		assert.Len(t, seen, NumberMax)
	})
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name        string
		min         int
		max         int
		expectError bool
	}{
		{"valid_range", 1, 45, false},
		{"equal_values", 5, 5, false},
		{"invalid_range", 45, 1, true},
		{"negative_range", -10, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.min, tt.max)
			if tt.expectError {
				assert.Equal(t, ErrInvalidRange, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		rangeSize   int
		expectError bool
	}{
		{"valid_count", 6, 45, false},
		{"zero_count", 0, 45, false},
		{"whole_range", 45, 45, false},
		{"exceeds_range", 46, 45, true},
		{"negative_count", -1, 45, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCount(tt.count, tt.rangeSize)
			if tt.expectError {
				assert.Equal(t, ErrInvalidCount, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
