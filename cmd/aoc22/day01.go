package main

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/maisem/aoc22"
)

// calorieTotals returns the calories carried by each elf. Elves are
// separated by blank lines.
func calorieTotals(lines iter.Seq[string]) ([]int, error) {
	var totals []int
	for g := range aoc.Group(lines, func(s string) bool { return s == "" }) {
		cals, err := aoc.Ints(g...)
		if err != nil {
			return nil, fmt.Errorf("bad calorie count: %w", err)
		}
		totals = append(totals, aoc.Sum(cals...))
	}
	return totals, nil
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() (any, error) {
	totals, err := calorieTotals(s.Lines())
	if err != nil {
		return nil, err
	}
	s.Debugf("%d elves", len(totals))
	most, ok := aoc.Max(slices.Values(totals))
	if !ok {
		return nil, errors.New("no elves in input")
	}
	return most, nil
}

// want=45000
func (s solver) D1p2() (any, error) {
	totals, err := calorieTotals(s.Lines())
	if err != nil {
		return nil, err
	}
	top := aoc.TopN(slices.Values(totals), 3)
	s.Debugf("top three: %v", top)
	return aoc.SumSeq(slices.Values(top)), nil
}
