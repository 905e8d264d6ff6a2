package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a subsequence of length < 1 is requested.
	ErrBadLength = errors.New("subsequence length must be positive")

	// ErrTooShort is returned when the input has fewer digits than the
	// requested subsequence length.
	ErrTooShort = errors.New("not enough digits")
)

// MaxSubsequence returns the k digits of digits, in their original order,
// that form the largest possible number.
//
// It makes a single pass keeping a stack of chosen digits. A smaller digit
// on top of the stack is dropped in favor of a larger incoming one while
// there are still digits to spare (n-k of them in total), since moving a
// larger digit to an earlier position always wins. Whatever budget is left
// at the end is spent on the tail.
//
// It returns an error wrapping ErrTooShort if len(digits) < k; the result is
// never padded.
func MaxSubsequence(digits []int, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("k = %d: %w", k, ErrBadLength)
	}
	n := len(digits)
	if n < k {
		return nil, fmt.Errorf("have %d, need %d: %w", n, k, ErrTooShort)
	}
	drop := n - k
	st := NewStack[int](n)
	for _, d := range digits {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	return st.Bottom(k), nil
}

// MaxValue returns the value of MaxSubsequence(digits, k).
func MaxValue(digits []int, k int) (uint64, error) {
	best, err := MaxSubsequence(digits, k)
	if err != nil {
		return 0, err
	}
	return Value[uint64](best)
}
