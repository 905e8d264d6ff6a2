package main

import (
	"fmt"
	"runtime"

	"github.com/maisem/aoc2025"
	"golang.org/x/sync/errgroup"
	"tailscale.com/types/logger"
)

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() (any, error) {
	return totalJoltage(s.Lines(), 2, s.Debugf)
}

// want=3121910778619
func (s solver) D3p2() (any, error) {
	return totalJoltage(s.Lines(), 12, s.Debugf)
}

// totalJoltage returns the sum over all banks of the largest k-digit
// joltage each bank can produce. Banks are evaluated concurrently; the
// first bank with fewer than k batteries fails the whole batch.
func totalJoltage(banks []string, k int, logf logger.Logf) (uint64, error) {
	memo := aoc.NewMemo[[]int, uint64]()
	vals := make([]uint64, len(banks))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, bank := range banks {
		i, bank := i, bank
		g.Go(func() error {
			v, err := memo.Get(aoc.Digits(bank), func(d []int) (uint64, error) {
				return aoc.MaxValue(d, k)
			})
			if err != nil {
				return fmt.Errorf("bank %d %q: %w", i+1, bank, err)
			}
			vals[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	for i, v := range vals {
		logf("bank %d: %d", i+1, v)
	}
	logf("%d banks, %d distinct", len(banks), memo.Len())
	return aoc.CheckedSum(vals...)
}
