// Command 2025 solves the Advent of Code 2025 puzzles.
//
// Inputs are read from <dir>/2025/<day>.input, where dir comes from
// -inputs, $AOC_INPUT_DIR or the working directory.
package main

import (
	"embed"

	"github.com/aocsolve/aoc"
)

func main() {
	aoc.Run(2025, sources, &solver{})
}

// sources holds the solvers, whose doc comments carry the samples.
//
//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
