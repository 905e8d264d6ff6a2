// Command y2025 solves Advent of Code 2025.
//
//	go run ./y2025 -day 3 -part 2
package main

import (
	"embed"

	"github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
