package aoc

import "slices"

// Combination is a non-negative integer solution found by MinCombination.
type Combination struct {
	Presses []int // per button
	Total   int
}

// MinCombination finds how many times to press each button so that every
// counter c ends up at exactly targets[c], pressing as few times as
// possible in total. Bit c of buttons[i] means button i adds one to
// counter c. It reports false if no non-negative solution exists.
//
// The system is brought to row echelon form with integer-only row
// operations. The buttons left without a pivot are free and are searched
// exhaustively, which is only practical because puzzle systems leave few
// of them with small targets.
func MinCombination(buttons []uint64, targets []int) (Combination, bool) {
	nb := len(buttons)
	aug := make([][]int, len(targets))
	for c, t := range targets {
		row := make([]int, nb+1)
		for b, mask := range buttons {
			if mask&(1<<c) != 0 {
				row[b] = 1
			}
		}
		row[nb] = t
		aug[c] = row
	}

	pivots, ok := eliminate(aug, nb)
	if !ok {
		return Combination{}, false
	}

	var free []int
	for b := 0; b < nb; b++ {
		if !slices.Contains(pivots, b) {
			free = append(free, b)
		}
	}
	caps := make([]int, len(free))
	for i, b := range free {
		caps[i] = pressCap(buttons[b], targets)
	}

	s := &combSearch{
		aug:     aug,
		pivots:  pivots,
		free:    free,
		caps:    caps,
		presses: make([]int, nb),
		best:    -1,
	}
	s.search(0, 0)
	if s.best < 0 {
		return Combination{}, false
	}
	return Combination{Presses: s.bestPresses, Total: s.best}, true
}

// eliminate reduces aug (rows of nb coefficients plus a right-hand side) to
// row echelon form in place, without division. The pivot of each column is
// its first nonzero entry at or below the current row. It returns the pivot
// column of each leading row, and false if a row reduces to 0 = nonzero.
func eliminate(aug [][]int, nb int) (pivots []int, ok bool) {
	row := 0
	for col := 0; col < nb && row < len(aug); col++ {
		p := -1
		for r := row; r < len(aug); r++ {
			if aug[r][col] != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		aug[row], aug[p] = aug[p], aug[row]
		pivots = append(pivots, col)

		pc := aug[row][col]
		for r := row + 1; r < len(aug); r++ {
			rc := aug[r][col]
			if rc == 0 {
				continue
			}
			for j := col; j <= nb; j++ {
				aug[r][j] = aug[r][j]*pc - aug[row][j]*rc
			}
			reduceRow(aug[r])
		}
		row++
	}
	for _, r := range aug[row:] {
		if r[nb] != 0 {
			return nil, false
		}
	}
	return pivots, true
}

// reduceRow divides every entry of r by their common divisor. The row
// describes the same equation afterwards.
func reduceRow(r []int) {
	g := 0
	for _, v := range r {
		g = GCD(g, v)
	}
	if g <= 1 {
		return
	}
	for j := range r {
		r[j] /= g
	}
}

// pressCap bounds the presses of a button: each press adds one to every
// counter it touches, so it can't be pressed more often than the smallest
// of those targets. A button touching nothing is never worth pressing.
func pressCap(mask uint64, targets []int) int {
	limit := -1
	for c, t := range targets {
		if mask&(1<<c) != 0 && (limit < 0 || t < limit) {
			limit = t
		}
	}
	return max(limit, 0)
}

type combSearch struct {
	aug     [][]int
	pivots  []int // pivot column of row i
	free    []int
	caps    []int
	presses []int

	best        int // -1 until a solution is found
	bestPresses []int
}

// search assigns free[i:] every value in 0..caps, then back-substitutes.
// sum is the total of the free values assigned so far.
func (s *combSearch) search(i, sum int) {
	if s.best >= 0 && sum >= s.best {
		return
	}
	if i == len(s.free) {
		s.solve()
		return
	}
	b := s.free[i]
	for v := 0; v <= s.caps[i]; v++ {
		s.presses[b] = v
		s.search(i+1, sum+v)
	}
	s.presses[b] = 0
}

// solve fills in the pivot buttons from the free ones, bottom row first,
// and records the result if it is a valid non-negative solution better than
// the best so far.
func (s *combSearch) solve() {
	nb := len(s.presses)
	for r := len(s.pivots) - 1; r >= 0; r-- {
		row, col := s.aug[r], s.pivots[r]
		rhs := row[nb]
		for c := col + 1; c < nb; c++ {
			rhs -= row[c] * s.presses[c]
		}
		if rhs%row[col] != 0 {
			return
		}
		v := rhs / row[col]
		if v < 0 {
			return
		}
		s.presses[col] = v
	}
	if total := Sum(s.presses...); s.best < 0 || total < s.best {
		s.best = total
		s.bestPresses = slices.Clone(s.presses)
	}
}
