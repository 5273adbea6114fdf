package aoc

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Group splits seq into groups ended by elements for which isSep reports
// true. Separators are dropped. Two consecutive separators, or a leading
// one, yield an empty group. Elements after the last separator form the
// final group; if there are none, no final group is produced.
//
// Each group is a new slice owned by the caller.
func Group[T any](seq iter.Seq[T], isSep func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		cur := []T{}
		for v := range seq {
			if !isSep(v) {
				cur = append(cur, v)
				continue
			}
			if !yield(cur) {
				return
			}
			cur = []T{}
		}
		if len(cur) > 0 {
			yield(cur)
		}
	}
}

// Chunk splits seq into groups of exactly n consecutive elements. A
// trailing group of fewer than n elements is dropped. It panics if n < 1.
func Chunk[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	if n < 1 {
		panic(fmt.Sprintf("aoc.Chunk: size %d; want >= 1", n))
	}
	return func(yield func([]T) bool) {
		cur := make([]T, 0, n)
		for v := range seq {
			cur = append(cur, v)
			if len(cur) < n {
				continue
			}
			if !yield(cur) {
				return
			}
			cur = make([]T, 0, n)
		}
	}
}

// Map returns a sequence of f applied to each element of seq.
func Map[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Dedup drops elements equal to the element right before them. Equal
// elements that are not adjacent are all kept.
func Dedup[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev T
		first := true
		for v := range seq {
			if !first && v == prev {
				continue
			}
			first = false
			prev = v
			if !yield(v) {
				return
			}
		}
	}
}

// Sorted collects seq into a slice sorted in ascending order.
func Sorted[T constraints.Ordered](seq iter.Seq[T]) []T {
	s := slices.Collect(seq)
	slices.Sort(s)
	return s
}

// SortedFunc collects seq into a slice sorted by cmp. The sort is stable:
// elements that compare equal keep their order from seq.
func SortedFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) []T {
	s := slices.Collect(seq)
	slices.SortStableFunc(s, cmp)
	return s
}
