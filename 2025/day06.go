package main

import (
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	return grandTotal(parseWorksheetRows(s.Lines()))
}

// want=3263827
func (s solver) D6p2() any {
	return grandTotal(parseWorksheetColumns(s.Lines()))
}

// problem is one column of the math worksheet.
type problem struct {
	op   byte // '+' or '*'
	nums []int
}

func (p problem) answer() int {
	if p.op == '*' {
		return aoc.Product(p.nums...)
	}
	return aoc.Sum(p.nums...)
}

func grandTotal(ps []problem) int {
	total := 0
	for _, p := range ps {
		total += p.answer()
	}
	return total
}

// parseWorksheetRows reads each problem's numbers across the rows: the
// i-th number of every row belongs to the i-th operator of the last line.
func parseWorksheetRows(lines []string) []problem {
	if len(lines) == 0 {
		return nil
	}
	var ps []problem
	for _, op := range strings.Fields(lines[len(lines)-1]) {
		ps = append(ps, problem{op: op[0]})
	}
	for _, l := range lines[:len(lines)-1] {
		for i, f := range strings.Fields(l) {
			if i < len(ps) {
				ps[i].nums = append(ps[i].nums, aoc.Int(f))
			}
		}
	}
	return ps
}

// parseWorksheetColumns reads numbers top to bottom, one per character
// column. A problem starts at the column holding its operator and takes
// every number up to the next operator.
func parseWorksheetColumns(lines []string) []problem {
	if len(lines) == 0 {
		return nil
	}
	var ps []problem
	for _, col := range aoc.ParseGrid(lines, ' ').Transpose() {
		last := len(col) - 1
		if op := col[last]; op == '*' || op == '+' {
			ps = append(ps, problem{op: op})
		}
		if len(ps) == 0 {
			continue
		}
		if ds := aoc.DigitsIn(string(col[:last])); len(ds) > 0 {
			p := &ps[len(ps)-1]
			p.nums = append(p.nums, aoc.Undigits(ds))
		}
	}
	return ps
}
