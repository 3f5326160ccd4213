package main

import (
	"math/bits"
	"regexp"
	"strings"

	"github.com/aocsolve/aoc"
	"github.com/pkg/errors"
)

/*
want=7

[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
*/
func (s solver) D10p1() any {
	total := 0
	for _, m := range parseMachines(s.Lines()) {
		n, ok, err := fewestToggles(m)
		aoc.MustDo(err)
		if !ok {
			s.Debugf("no toggle sequence lights %q", m.line)
			continue
		}
		total += n
	}
	return total
}

// want=33
func (s solver) D10p2() any {
	return aoc.ParallelMapFold(parseMachines(s.Lines()), func(m machine) int {
		c, ok := aoc.MinCombination(m.buttons, m.joltage)
		if !ok {
			aoc.Logger().WithField("machine", m.line).Debug("no joltage solution")
			return 0
		}
		return c.Total
	}, func(sum, v int) int {
		return sum + v
	}, 0)
}

// machine is one line of the manual.
type machine struct {
	line    string
	lights  uint64 // bit i set for '#' at position i
	nLights int
	buttons []uint64 // bit i set if the button wires to light/counter i
	joltage []int
}

var (
	lightsRx  = regexp.MustCompile(`\[([.#]+)\]`)
	buttonRx  = regexp.MustCompile(`\(([0-9,]+)\)`)
	joltageRx = regexp.MustCompile(`\{([0-9,]+)\}`)
)

func parseMachines(lines []string) []machine {
	var out []machine
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, aoc.MustGet(parseMachine(l)))
	}
	return out
}

// parseMachine parses "[.##.] (3) (1,3) {3,5,4,7}". Every part is
// optional; a missing part parses as empty.
func parseMachine(line string) (machine, error) {
	m := machine{line: line}
	if sm := lightsRx.FindStringSubmatch(line); sm != nil {
		m.nLights = len(sm[1])
		for i, c := range sm[1] {
			if c == '#' {
				m.lights |= 1 << i
			}
		}
	}
	for _, sm := range buttonRx.FindAllStringSubmatch(line, -1) {
		var mask uint64
		for _, f := range strings.Split(sm[1], ",") {
			if f == "" {
				continue
			}
			i, err := aoc.ParseInt(f)
			if err != nil {
				return machine{}, &aoc.ParseError{Line: line, Err: err}
			}
			if i < 0 || i >= 64 {
				return machine{}, aoc.ParseErrorf(line, "button wired to %d; want 0..63", i)
			}
			mask |= 1 << i
		}
		m.buttons = append(m.buttons, mask)
	}
	if sm := joltageRx.FindStringSubmatch(line); sm != nil {
		for _, f := range strings.Split(sm[1], ",") {
			if f == "" {
				continue
			}
			n, err := aoc.ParseInt(f)
			if err != nil {
				return machine{}, &aoc.ParseError{Line: line, Err: err}
			}
			m.joltage = append(m.joltage, n)
		}
	}
	return m, nil
}

// maxToggleButtons bounds the subsets fewestToggles tries to 1<<24.
const maxToggleButtons = 24

// fewestToggles returns the fewest button presses that leave exactly the
// lights pattern lit, starting from all lights off. Pressing a button twice
// undoes it, so every subset of buttons is tried once.
func fewestToggles(m machine) (int, bool, error) {
	if len(m.buttons) > maxToggleButtons {
		return 0, false, errors.Wrapf(aoc.ErrPrecondition, "%d buttons is too many to try every subset, want at most %d", len(m.buttons), maxToggleButtons)
	}
	lightMask := uint64(1)<<m.nLights - 1
	best := -1
	for set := uint64(0); set < 1<<len(m.buttons); set++ {
		n := bits.OnesCount64(set)
		if best >= 0 && n >= best {
			continue
		}
		var state uint64
		for i, b := range m.buttons {
			if set&(1<<i) != 0 {
				state ^= b
			}
		}
		if state&lightMask == m.lights&lightMask {
			best = n
		}
	}
	return best, best >= 0, nil
}
