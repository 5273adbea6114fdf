package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/maisem/aoc22"
)

func priority(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid item %q", c)
}

func compartments(line string) (string, string, error) {
	if len(line)%2 != 0 {
		return "", "", fmt.Errorf("rucksack %q has an odd number of items", line)
	}
	return line[:len(line)/2], line[len(line)/2:], nil
}

func sortedItems(s string) []byte {
	return aoc.Sorted(slices.Values([]byte(s)))
}

// firstCommonItem returns the smallest item found in both a and b.
func firstCommonItem(a, b string) (byte, bool) {
	first, second := sortedItems(a), sortedItems(b)
	for i, j := 0, 0; i < len(first) && j < len(second); {
		switch f, s := first[i], second[j]; {
		case f == s:
			return f, true
		case f < s:
			i++
		default:
			j++
		}
	}
	return 0, false
}

// commonItem returns an item found in every rucksack of group.
func commonItem(group []string) (byte, bool) {
	if len(group) == 0 {
		return 0, false
	}
	uniq := aoc.Map(slices.Values(group), func(line string) string {
		return string(slices.Collect(aoc.Dedup(slices.Values(sortedItems(line)))))
	})
	bySize := aoc.SortedFunc(uniq, func(a, b string) int {
		return len(a) - len(b)
	})
	head, tail := bySize[0], bySize[1:]
	for i := 0; i < len(head); i++ {
		if !slices.ContainsFunc(tail, func(other string) bool {
			return strings.IndexByte(other, head[i]) < 0
		}) {
			return head[i], true
		}
	}
	return 0, false
}

func sumPriorities(items iter.Seq2[byte, error]) (int, error) {
	sum := 0
	for item, err := range items {
		if err != nil {
			return 0, err
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// misplacedItems yields the item each rucksack has in both compartments.
func misplacedItems(lines iter.Seq[string]) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for line := range lines {
			a, b, err := compartments(line)
			if err != nil {
				yield(0, err)
				return
			}
			item, ok := firstCommonItem(a, b)
			if !ok {
				yield(0, fmt.Errorf("rucksack %q has no item in both compartments", line))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// badges yields the item common to each group of three rucksacks.
func badges(lines iter.Seq[string]) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for group := range aoc.Chunk(lines, 3) {
			item, ok := commonItem(group)
			if !ok {
				yield(0, fmt.Errorf("group %q has no common item", group))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() (any, error) {
	return sumPriorities(misplacedItems(s.Lines()))
}

// want=70
func (s solver) D3p2() (any, error) {
	return sumPriorities(badges(s.Lines()))
}
