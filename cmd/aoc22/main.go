// Command aoc22 solves the Advent of Code 2022 puzzles.
//
// Usage:
//
//	aoc22 [-sample] [-debug] [-input-dir dir] <NN>
//
// where NN is the day, suffixed with "b" for the second part (e.g. 01b).
// Inputs are read from dir/dayNN.txt.
package main

import (
	"embed"

	"github.com/maisem/aoc22"
)

//go:embed day??.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Main(2022, source, &solver{})
}
