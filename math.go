package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotDigit is returned when a value outside [0, 9] is used as a
	// decimal digit.
	ErrNotDigit = errors.New("not a decimal digit")

	// ErrOverflow is returned when a result does not fit its integer type.
	ErrOverflow = errors.New("integer overflow")
)

// Digits returns the decimal digits of line in order. Every other
// character is skipped.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		if d, ok := Digit(c); ok {
			in = append(in, d)
		}
	}
	return in
}

// Digit returns the value of r if it is a decimal digit.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Value returns the number whose decimal digits, most significant first,
// are digits. An empty slice is 0.
func Value[T constraints.Unsigned](digits []int) (T, error) {
	var v T
	limit := ^T(0)
	for i, d := range digits {
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("digits[%d] = %d: %w", i, d, ErrNotDigit)
		}
		if v > (limit-T(d))/10 {
			return 0, fmt.Errorf("%d digits into %T: %w", len(digits), v, ErrOverflow)
		}
		v = v*10 + T(d)
	}
	return v, nil
}

// CheckedSum returns the sum of the numbers, or ErrOverflow if it does
// not fit in T.
func CheckedSum[T constraints.Unsigned](nums ...T) (T, error) {
	var sum T
	for _, v := range nums {
		if sum > ^T(0)-v {
			return 0, ErrOverflow
		}
		sum += v
	}
	return sum, nil
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
