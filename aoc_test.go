package aoc

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input

after-a-blank-line
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

after-a-blank-line
`,
			},
		},
		{
			comment: `// want=42`,
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		require.True(t, ok, tt.comment)
		assert.Equal(t, tt.want, got)
	}

	_, ok := parseSample("// just a comment")
	assert.False(t, ok)
}

const toySolver = `package main

/*
want=6

1
2
3
*/
func (s solver) D1p1() any { return 0 }

// want=3
func (s solver) D1p2() any { return 0 }
`

const toySolver2 = `package main

// want=x
//
// no input of its own, and none earlier in this file
func (s solver) D2p1() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": {Data: []byte(toySolver)},
		"day02.go": {Data: []byte(toySolver2)},
		"notes.md": {Data: []byte("want=ignored")},
	}
	samples, err := extractSamples(src)
	require.NoError(t, err)
	assert.Equal(t, map[string]sample{
		"D1p1": {want: "6", input: "1\n2\n3\n"},
		"D1p2": {want: "3", input: "1\n2\n3\n"},
		"D2p1": {want: "x"},
	}, samples)
}

type toy struct {
	*Puzzle
}

func (s toy) D1p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += Int(line)
	})
	return sum
}

func (s toy) D1p2() any {
	return len(s.Lines())
}

func TestCheckSamples(t *testing.T) {
	src := fstest.MapFS{"day01.go": {Data: []byte(toySolver)}}
	require.NoError(t, CheckSamples(2025, src, &toy{}))

	bad := fstest.MapFS{"day01.go": {Data: []byte(`package main

/*
want=7

1
2
3
*/
func (s solver) D1p1() any { return 0 }
`)}}
	err := CheckSamples(2025, bad, &toy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "D1p1: got 6; want 7")
	assert.Contains(t, err.Error(), "D1p2: no sample")
}

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&toy{})
	require.Len(t, days, 1)
	d := days[1]
	assert.Equal(t, 1, d.day)
	require.Len(t, d.parts, 2)
	assert.Equal(t, "1", d.parts[0].Part)
	assert.Equal(t, "D1p2", d.parts[1].Name)
}

func TestNewPuzzle(t *testing.T) {
	s := toy{NewPuzzle(2025, 1, "4\n5\n", false)}
	assert.Equal(t, 9, s.D1p1())
	assert.Equal(t, 9, s.D1p1(), "same input, same answer")
	assert.Equal(t, 2, s.D1p2())
	assert.Equal(t, 1, s.Day())
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "1.input")
	require.NoError(t, os.WriteFile(name, []byte("a\r\nb\n\nc"), 0o644))
	assert.Equal(t, []string{"a", "b", "", "c"}, ReadLines(name))

	assert.Empty(t, ReadLines(filepath.Join(dir, "missing.input")))
}

func TestPuzzleMissingInput(t *testing.T) {
	old := flagInputs
	defer func() { flagInputs = old }()
	flagInputs = t.TempDir()

	p := &Puzzle{year: 2025, day: day{day: 3}}
	assert.Empty(t, p.Lines())
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
}

func TestParallelMapFold(t *testing.T) {
	in := []int{1, 2, 3, 4}
	got := ParallelMapFold(in, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	assert.Equal(t, 30, got)
}
