package aoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const inputDirEnv = "AOC_INPUT_DIR"

// inputDir returns the directory inputs are read from: -inputs, then
// $AOC_INPUT_DIR (possibly set through .env), then the working directory.
func inputDir() string {
	return Or(flagInputs, os.Getenv(inputDirEnv), ".")
}

func inputPath(year, day int) string {
	return filepath.Join(inputDir(), fmt.Sprintf("%d/%d.input", year, day))
}

func readInput(filename string) []byte {
	b, err := os.ReadFile(filename)
	if err != nil {
		log.WithError(err).Warnf("no input at %s; using empty input", filename)
		return []byte{}
	}
	return b
}

// ReadLines returns the lines of the named file, or no lines at all if the
// file cannot be opened.
func ReadLines(filename string) []string {
	f, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer f.Close()
	return ReadLinesFrom(f)
}

// ReadLinesFrom returns the lines read from r. Reading stops silently at the
// first error, keeping the lines read so far. A trailing carriage return is
// stripped from every line.
func ReadLinesFrom(r io.Reader) []string {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	return lines
}
