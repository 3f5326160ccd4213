package aoc

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestSubsequence(t *testing.T) {
	tests := []struct {
		in   string
		k    int
		want int
	}{
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"234234234234278", 2, 78},
		{"818181911112111", 2, 92},
		{"987654321111111", 12, 987654321111},
		{"811111111111119", 12, 811111111119},
		{"234234234234278", 12, 434234234278},
		{"818181911112111", 12, 888911112111},
		{"987654321111111", 15, 987654321111111},
		{"12345", 0, 0},
		{"12345", 5, 12345},
	}
	for _, tt := range tests {
		got, err := BestSubsequence(DigitsIn(tt.in), tt.k)
		require.NoError(t, err, tt.in)
		assert.Len(t, got, tt.k)
		assert.Equal(t, tt.want, Undigits(got), "%s pick %d", tt.in, tt.k)
	}
}

func TestBestSubsequenceAllDigits(t *testing.T) {
	ds := DigitsIn("987654321111111")
	got, err := BestSubsequence(ds, len(ds))
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestBestSubsequenceTooLong(t *testing.T) {
	_, err := BestSubsequence([]int{1, 2}, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition))

	_, err = BestSubsequence([]int{1, 2}, -1)
	assert.True(t, errors.Is(err, ErrPrecondition))
}

// bestByMask tries every subsequence of length k.
func bestByMask(ds []int, k int) int {
	best := -1
	for m := 0; m < 1<<len(ds); m++ {
		var pick []int
		for i, d := range ds {
			if m&(1<<i) != 0 {
				pick = append(pick, d)
			}
		}
		if len(pick) == k {
			best = max(best, Undigits(pick))
		}
	}
	return best
}

func TestBestSubsequenceMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 200; iter++ {
		ds := make([]int, 1+r.Intn(10))
		for i := range ds {
			ds[i] = r.Intn(10)
		}
		k := r.Intn(len(ds) + 1)
		got, err := BestSubsequence(ds, k)
		require.NoError(t, err)
		require.Equal(t, bestByMask(ds, k), Undigits(got), "%v pick %d", ds, k)
	}
}

func TestBetterDigits(t *testing.T) {
	assert.True(t, betterDigits([]int{9, 1}, []int{8, 9}))
	assert.False(t, betterDigits([]int{8, 9}, []int{9, 1}))
	assert.True(t, betterDigits([]int{1, 0}, []int{1}))
	assert.False(t, betterDigits([]int{1, 2}, []int{1, 2}))
}
