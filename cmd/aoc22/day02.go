package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/maisem/aoc22"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// beats returns the shape that s wins against.
func (s shape) beats() shape { return (s + 2) % 3 }

// beatenBy returns the shape that wins against s.
func (s shape) beatenBy() shape { return (s + 1) % 3 }

func (s shape) score() int { return int(s) + 1 }

func (s shape) String() string {
	switch s {
	case rock:
		return "rock"
	case paper:
		return "paper"
	case scissors:
		return "scissors"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

type outcome int

const (
	lose outcome = iota
	draw
	win
)

func (o outcome) score() int { return int(o) * 3 }

func play(mine, theirs shape) outcome {
	switch {
	case mine == theirs:
		return draw
	case mine == theirs.beatenBy():
		return win
	}
	return lose
}

// choose returns the shape to play against theirs to get o.
func choose(theirs shape, o outcome) shape {
	switch o {
	case win:
		return theirs.beatenBy()
	case lose:
		return theirs.beats()
	}
	return theirs
}

func roundScore(mine, theirs shape) int {
	return play(mine, theirs).score() + mine.score()
}

// parseRound splits a strategy guide line into their shape and the
// second column (0, 1 or 2 for X, Y or Z).
func parseRound(line string) (shape, int, error) {
	a, b, ok := strings.Cut(line, " ")
	if !ok || len(a) != 1 || len(b) != 1 {
		return 0, 0, fmt.Errorf("bad round %q", line)
	}
	if a[0] < 'A' || a[0] > 'C' {
		return 0, 0, fmt.Errorf("bad round %q: invalid shape %q", line, a)
	}
	if b[0] < 'X' || b[0] > 'Z' {
		return 0, 0, fmt.Errorf("bad round %q: invalid column %q", line, b)
	}
	return shape(a[0] - 'A'), int(b[0] - 'X'), nil
}

// totalScore sums the score of each round, where pick decides my shape
// from their shape and the second column.
func totalScore(lines iter.Seq[string], pick func(theirs shape, col int) shape) (int, error) {
	var scores []int
	for line := range lines {
		theirs, col, err := parseRound(line)
		if err != nil {
			return 0, err
		}
		scores = append(scores, roundScore(pick(theirs, col), theirs))
	}
	return aoc.Sum(scores...), nil
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() (any, error) {
	return totalScore(s.Lines(), func(_ shape, col int) shape {
		return shape(col)
	})
}

// want=12
func (s solver) D2p2() (any, error) {
	return totalScore(s.Lines(), func(theirs shape, col int) shape {
		return choose(theirs, outcome(col))
	})
}
