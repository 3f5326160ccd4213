package main

import (
	"strconv"
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	sum := 0
	for _, r := range parseIDRanges(string(s.Input())) {
		sum += sumDoubledIDs(r)
	}
	return sum
}

// want=4174379265
func (s solver) D2p2() any {
	sum := 0
	for _, r := range parseIDRanges(string(s.Input())) {
		sum += sumRepeatedIDs(r)
	}
	return sum
}

func parseIDRanges(in string) []aoc.Interval {
	var out []aoc.Interval
	for _, f := range strings.Split(in, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		out = append(out, aoc.MustGet(aoc.ParseInterval(f)))
	}
	return out
}

// repeatFactor returns the number that turns a block of blockLen digits
// into that block written n times: 101 for (2, 2), 10101 for (2, 3).
func repeatFactor(blockLen, n int) int {
	f := 0
	p := aoc.Pow10(blockLen)
	for i := 0; i < n; i++ {
		f = f*p + 1
	}
	return f
}

// sumDoubledIDs sums the IDs in r made of some digit block written exactly
// twice, such as 6464.
func sumDoubledIDs(r aoc.Interval) int {
	sum := 0
	for l := aoc.NumDigits(r.Lo); l <= aoc.NumDigits(r.Hi); l++ {
		if l%2 != 0 {
			continue
		}
		half := l / 2
		factor := repeatFactor(half, 2)
		lo := max(aoc.Pow10(half-1), ceilDiv(r.Lo, factor))
		hi := min(aoc.Pow10(half)-1, r.Hi/factor)
		for b := lo; b <= hi; b++ {
			sum += b * factor
		}
	}
	return sum
}

// sumRepeatedIDs sums the IDs in r made of some digit block written two or
// more times. Each ID is counted once even if several block lengths
// produce it: only blocks that aren't themselves repetitions are used.
func sumRepeatedIDs(r aoc.Interval) int {
	sum := 0
	for l := max(aoc.NumDigits(r.Lo), 2); l <= aoc.NumDigits(r.Hi); l++ {
		lo := max(r.Lo, aoc.Pow10(l-1))
		hi := min(r.Hi, aoc.Pow10(l)-1)
		if lo > hi {
			continue
		}
		for blockLen := 1; blockLen <= l/2; blockLen++ {
			if l%blockLen != 0 {
				continue
			}
			factor := repeatFactor(blockLen, l/blockLen)
			bLo := max(aoc.Pow10(blockLen-1), ceilDiv(lo, factor))
			bHi := min(aoc.Pow10(blockLen)-1, hi/factor)
			for b := bLo; b <= bHi; b++ {
				if isRepetition(b) {
					continue
				}
				sum += b * factor
			}
		}
	}
	return sum
}

// isRepetition reports whether n's digits are a shorter block repeated.
func isRepetition(n int) bool {
	s := strconv.Itoa(n)
	for size := 1; size <= len(s)/2; size++ {
		if len(s)%size == 0 && strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}
	return false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
