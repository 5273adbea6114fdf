package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/maisem/aoc22"
)

// sections is an inclusive range of section IDs.
type sections struct {
	lo, hi int
}

func (a sections) contains(b sections) bool {
	return a.lo <= b.lo && b.hi <= a.hi
}

func (a sections) overlaps(b sections) bool {
	return b.lo <= a.hi && b.hi >= a.lo
}

func redundant(a, b sections) bool {
	return a.contains(b) || b.contains(a)
}

func parseSections(s string) (sections, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return sections{}, fmt.Errorf("bad section range %q", s)
	}
	n, err := aoc.Ints(lo, hi)
	if err != nil {
		return sections{}, fmt.Errorf("bad section range %q: %w", s, err)
	}
	if n[0] > n[1] {
		return sections{}, fmt.Errorf("bad section range %q: start after end", s)
	}
	return sections{n[0], n[1]}, nil
}

func parsePair(line string) (sections, sections, error) {
	a, b, ok := strings.Cut(line, ",")
	if !ok {
		return sections{}, sections{}, fmt.Errorf("bad assignment pair %q", line)
	}
	sa, err := parseSections(a)
	if err != nil {
		return sections{}, sections{}, err
	}
	sb, err := parseSections(b)
	if err != nil {
		return sections{}, sections{}, err
	}
	return sa, sb, nil
}

// countPairs returns the number of assignment pairs for which match is true.
func countPairs(lines iter.Seq[string], match func(a, b sections) bool) (int, error) {
	n := 0
	for line := range lines {
		a, b, err := parsePair(line)
		if err != nil {
			return 0, err
		}
		if match(a, b) {
			n++
		}
	}
	return n, nil
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() (any, error) {
	return countPairs(s.Lines(), redundant)
}

// want=4
func (s solver) D4p2() (any, error) {
	return countPairs(s.Lines(), sections.overlaps)
}
