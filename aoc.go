// Package aoc are quick & dirty utilities for solving Advent of Code
// problems offline.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses every .go file in src and returns the samples found
// in the doc comments of solver methods, keyed by method name. A method
// without its own input reuses the previous method's input in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, errors.Wrap(err, "listing sources")
	}
	slices.Sort(names)
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s to extract samples", name)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is the per-day state handed to solver methods through the
// embedded *Puzzle field of the solver struct.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	input      []byte
	fixedInput bool
}

// NewPuzzle returns a Puzzle whose input is always in. It is meant for
// tests that call solver methods directly.
func NewPuzzle(year, dayNum int, in string, sampleMode bool) *Puzzle {
	return &Puzzle{
		year:       year,
		day:        day{day: dayNum},
		SampleMode: sampleMode,
		input:      []byte(in),
		fixedInput: true,
	}
}

// Day returns the puzzle's day number.
func (p *Puzzle) Day() int { return p.day.day }

func (p *Puzzle) Input() []byte {
	if p.fixedInput {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = readInput(inputPath(p.year, p.day.day))
	}
	return p.input
}

// Lines returns the input split into lines, without line terminators.
func (p *Puzzle) Lines() []string {
	return ReadLinesFrom(bytes.NewReader(p.Input()))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

func (p *Puzzle) Debug(v ...any) {
	log.Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		log.Debugf(format, args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("method %s has signature %s; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
	flagProfile    string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", "", "directory holding <year>/<day>.input files (default $"+inputDirEnv+" or .)")
	flag.StringVar(&flagProfile, "cpuprofile", "", "write a CPU profile into this directory")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.WithError(err).Warn("loading .env")
	}
	setDebug(flagDebug)
})

// bind points the solver's embedded *Puzzle field at p.
func bind(slvr any, p *Puzzle) {
	sr := reflect.ValueOf(slvr)
	f := sr.Elem().FieldByName("Puzzle")
	if !f.IsValid() {
		log.Fatalf("solver %T has no embedded *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
}

// checkSample runs ps against its sample and reports a mismatch as an error.
func checkSample(p *Puzzle, ps partSolver) (got any, err error) {
	p.solver = ps
	p.SampleMode = true
	got = ps.fn()
	want := p.Sample().want
	if fmt.Sprint(got) != want {
		return got, errors.Errorf("%s: got %v; want %v", ps.Name, got, want)
	}
	return got, nil
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Day", day.day)
	bind(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		dlog := log.WithFields(logrus.Fields{"day": day.day, "part": ps.Part})

		if !flagSkipSample {
			t0 := time.Now()
			got, err := checkSample(&p, ps)
			if err != nil {
				dlog.WithError(err).Error("sample mismatch")
				return
			}
			dlog.WithField("took", time.Since(t0).Round(time.Microsecond)).Infof("sample: %v ok", got)
		}
		if flagOnlySample {
			continue
		}
		p.SampleMode = false
		// Prime the input.
		p.Input()
		t0 := time.Now()
		got := ps.fn()
		fmt.Printf("Part %s: %v\n", ps.Part, got)
		dlog.WithField("took", time.Since(t0).Round(time.Microsecond)).Info("solved")
	}
}

// Run solves every registered day of year (or just -day) with slvr, a
// pointer to a struct embedding *Puzzle. src holds the solver sources whose
// doc comments carry the samples.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	if flagProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagProfile), profile.NoShutdownHook).Stop()
	}
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// CheckSamples runs every solver method of slvr against the sample in its
// doc comment and returns an error describing every mismatch or missing
// sample.
func CheckSamples(year int, src fs.FS, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var bad []string
	for _, d := range dayNums {
		p := &Puzzle{year: year, day: days[d], samples: samples}
		bind(slvr, p)
		for _, ps := range days[d].parts {
			if _, ok := samples[ps.Name]; !ok {
				bad = append(bad, ps.Name+": no sample")
				continue
			}
			if _, err := checkSample(p, ps); err != nil {
				bad = append(bad, err.Error())
			}
		}
	}
	if len(bad) > 0 {
		return errors.New(strings.Join(bad, "\n"))
	}
	return nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Int(s string) int {
	return MustGet(ParseInt(s))
}

// ParseInt is Int without the panic.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}
	return n, nil
}

func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
