// Package puzzles holds the Advent of Code 2024 puzzles that are solved with
// the aoc search engine: the reindeer maze (day 16), the falling bytes
// (day 18) and the race track cheats (day 20).
package puzzles

import "errors"

// ErrNoPath is returned when a puzzle promises a route but none exists.
var ErrNoPath = errors.New("no path found")
