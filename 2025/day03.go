package main

import (
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return totalJoltage(s.Lines(), 2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return totalJoltage(s.Lines(), 12)
}

// totalJoltage sums, over every bank of batteries, the largest number made
// by switching on k of its batteries. Banks are independent and are solved
// in parallel.
func totalJoltage(banks []string, k int) int {
	var nonEmpty []string
	for _, b := range banks {
		if strings.TrimSpace(b) != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return aoc.ParallelMapFold(nonEmpty, func(bank string) int {
		return aoc.MustGet(maxJoltage(bank, k))
	}, func(sum, v int) int {
		return sum + v
	}, 0)
}

// maxJoltage is the value of the best k-digit subsequence of the digits in
// bank.
func maxJoltage(bank string, k int) (int, error) {
	ds, err := aoc.BestSubsequence(aoc.DigitsIn(bank), k)
	if err != nil {
		return 0, err
	}
	return aoc.Undigits(ds), nil
}
