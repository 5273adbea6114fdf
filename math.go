package aoc

import (
	"container/heap"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// SumSeq returns the sum of the numbers in seq, or 0 if seq is empty.
// Overflow wraps as it does for T.
func SumSeq[T Number](seq iter.Seq[T]) T {
	var sum T
	for v := range seq {
		sum += v
	}
	return sum
}

// Max returns the largest element of seq. It reports false if seq is
// empty. Of several equal maxima, the first is returned.
func Max[T constraints.Ordered](seq iter.Seq[T]) (max T, ok bool) {
	for v := range seq {
		if !ok || v > max {
			max, ok = v, true
		}
	}
	return max, ok
}

// TopN returns the n largest values of seq in ascending order. Duplicates
// are kept. If seq has fewer than n values, all of them are returned. It
// panics if n < 1.
func TopN(seq iter.Seq[int], n int) []int {
	if n < 1 {
		panic(fmt.Sprintf("aoc.TopN: count %d; want >= 1", n))
	}
	h := &minHeap{}
	for v := range seq {
		if h.Len() == n {
			if v <= (*h)[0] {
				continue
			}
			heap.Pop(h)
		}
		heap.Push(h, v)
	}
	top := make([]int, h.Len())
	for i := range top {
		top[i] = heap.Pop(h).(int)
	}
	return top
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
