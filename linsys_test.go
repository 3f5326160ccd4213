package aoc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mask(counters ...int) uint64 {
	var m uint64
	for _, c := range counters {
		m |= 1 << c
	}
	return m
}

// applyPresses returns the counter values the presses produce.
func applyPresses(buttons []uint64, presses []int, n int) []int {
	out := make([]int, n)
	for b, m := range buttons {
		for c := 0; c < n; c++ {
			if m&(1<<c) != 0 {
				out[c] += presses[b]
			}
		}
	}
	return out
}

func TestMinCombination(t *testing.T) {
	tests := []struct {
		name    string
		buttons []uint64
		targets []int
		want    int
	}{
		{
			name:    "independent",
			buttons: []uint64{mask(0), mask(1)},
			targets: []int{3, 4},
			want:    7,
		},
		{
			name:    "shared button is cheaper",
			buttons: []uint64{mask(0, 1), mask(0), mask(1)},
			targets: []int{2, 2},
			want:    2,
		},
		{
			name:    "free variable",
			buttons: []uint64{mask(0), mask(0, 1), mask(1)},
			targets: []int{5, 3},
			want:    5,
		},
		{
			name:    "first machine",
			buttons: []uint64{mask(3), mask(1, 3), mask(2), mask(2, 3), mask(0, 2), mask(0, 1)},
			targets: []int{3, 5, 4, 7},
			want:    10,
		},
		{
			name:    "second machine",
			buttons: []uint64{mask(0, 2, 3, 4), mask(2, 3), mask(0, 4), mask(0, 1, 2), mask(1, 2, 3, 4)},
			targets: []int{7, 5, 12, 7, 2},
			want:    12,
		},
		{
			name:    "third machine",
			buttons: []uint64{mask(0, 1, 2, 3, 4), mask(0, 3, 4), mask(0, 1, 2, 4, 5), mask(1, 2)},
			targets: []int{10, 11, 11, 5, 10, 5},
			want:    11,
		},
		{
			name:    "all zero",
			buttons: []uint64{mask(0), mask(0, 1)},
			targets: []int{0, 0},
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := MinCombination(tt.buttons, tt.targets)
			require.True(t, ok)
			assert.Equal(t, tt.want, c.Total)
			assert.Equal(t, tt.want, Sum(c.Presses...))
			assert.Equal(t, tt.targets, applyPresses(tt.buttons, c.Presses, len(tt.targets)))
		})
	}
}

func TestMinCombinationNoSolution(t *testing.T) {
	// One button drives both counters, so they must end up equal.
	_, ok := MinCombination([]uint64{mask(0, 1)}, []int{2, 3})
	assert.False(t, ok)

	// A counter no button touches.
	_, ok = MinCombination([]uint64{mask(0)}, []int{1, 1})
	assert.False(t, ok)

	// Solvable over the rationals, but only with a negative press.
	_, ok = MinCombination([]uint64{mask(0, 1), mask(1)}, []int{3, 1})
	assert.False(t, ok)
}

func TestMinCombinationSums(t *testing.T) {
	in := [][]int{{3, 5, 4, 7}, {7, 5, 12, 7, 2}, {10, 11, 11, 5, 10, 5}}
	buttons := [][]uint64{
		{mask(3), mask(1, 3), mask(2), mask(2, 3), mask(0, 2), mask(0, 1)},
		{mask(0, 2, 3, 4), mask(2, 3), mask(0, 4), mask(0, 1, 2), mask(1, 2, 3, 4)},
		{mask(0, 1, 2, 3, 4), mask(0, 3, 4), mask(0, 1, 2, 4, 5), mask(1, 2)},
	}
	total := 0
	for i := range in {
		c, ok := MinCombination(buttons[i], in[i])
		require.True(t, ok)
		total += c.Total
	}
	assert.Equal(t, 33, total)
}

// bruteMin tries every press count up to the largest target for every
// button.
func bruteMin(buttons []uint64, targets []int) (int, bool) {
	limit := 0
	for _, t := range targets {
		limit = max(limit, t)
	}
	presses := make([]int, len(buttons))
	best := -1
	var rec func(i int)
	rec = func(i int) {
		if i == len(buttons) {
			got := applyPresses(buttons, presses, len(targets))
			for c := range got {
				if got[c] != targets[c] {
					return
				}
			}
			if s := Sum(presses...); best < 0 || s < best {
				best = s
			}
			return
		}
		for v := 0; v <= limit; v++ {
			presses[i] = v
			rec(i + 1)
		}
	}
	rec(0)
	return best, best >= 0
}

func TestMinCombinationMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for iter := 0; iter < 300; iter++ {
		nc := 1 + r.Intn(3)
		nb := 1 + r.Intn(4)
		buttons := make([]uint64, nb)
		for b := range buttons {
			buttons[b] = uint64(1 + r.Intn(1<<nc-1))
		}
		targets := make([]int, nc)
		if iter%2 == 0 {
			// Reachable by construction.
			presses := make([]int, nb)
			for b := range presses {
				presses[b] = r.Intn(4)
			}
			targets = applyPresses(buttons, presses, nc)
		} else {
			for c := range targets {
				targets[c] = r.Intn(7)
			}
		}

		want, wantOK := bruteMin(buttons, targets)
		got, ok := MinCombination(buttons, targets)
		require.Equal(t, wantOK, ok, "buttons %b targets %v", buttons, targets)
		if ok {
			require.Equal(t, want, got.Total, "buttons %b targets %v", buttons, targets)
			require.Equal(t, targets, applyPresses(buttons, got.Presses, nc))
		}
	}
}

func TestEliminateInconsistent(t *testing.T) {
	aug := [][]int{
		{1, 1, 2},
		{1, 1, 3},
	}
	_, ok := eliminate(aug, 2)
	assert.False(t, ok)
}

func TestPressCap(t *testing.T) {
	targets := []int{4, 2, 9}
	assert.Equal(t, 2, pressCap(mask(0, 1), targets))
	assert.Equal(t, 9, pressCap(mask(2), targets))
	assert.Equal(t, 0, pressCap(0, targets))
}
