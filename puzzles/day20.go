package puzzles

import (
	"errors"
	"fmt"

	"github.com/gridwalk/aoc"
)

// ErrBranchingTrack is returned when the race track is not a single
// corridor from S to E.
var ErrBranchingTrack = errors.New("race track is not a single path")

// Track is a race track: a single corridor of open cells from S to E
// surrounded by walls.
type Track struct {
	grid  aoc.Grid[byte]
	Start aoc.Pt
	End   aoc.Pt
}

func ParseTrack(s string) (*Track, error) {
	return NewTrack(aoc.ParseGrid(s))
}

// NewTrack locates S and E in g.
func NewTrack(g aoc.Grid[byte]) (*Track, error) {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		return nil, fmt.Errorf("track has no start")
	}
	end, ok := aoc.Find(g, 'E')
	if !ok {
		return nil, fmt.Errorf("track has no end")
	}
	return &Track{grid: g, Start: start, End: end}, nil
}

// Path returns the cells of the track in race order, S first.
func (t *Track) Path() ([]aoc.Pt, error) {
	g := t.grid.ToGraph(t.Start, false, func(c byte) bool { return c == '#' })
	if !g.ReachableNodes(t.Start)[t.End] {
		return nil, fmt.Errorf("race track: %w", ErrNoPath)
	}
	_, path, _ := g.ShortestPath(t.Start, t.End)
	if len(path) != len(g.Nodes) {
		return nil, fmt.Errorf("%w: %d of %d cells on the path", ErrBranchingTrack, len(path), len(g.Nodes))
	}
	return path, nil
}

// CountCheats counts the cheats along path that pass through at most
// maxCheat picoseconds of walls and save at least minSave picoseconds. A
// cheat is identified by its start and end cells.
func CountCheats(path []aoc.Pt, maxCheat, minSave int) int {
	idx := make([]int, len(path))
	for i := range idx {
		idx[i] = i
	}
	counts := aoc.Parallel(idx, func(i int) int {
		n := 0
		for j := i + max(minSave, 1); j < len(path); j++ {
			d := path[i].MDist(path[j])
			if d <= maxCheat && j-i-d >= minSave {
				n++
			}
		}
		return n
	})
	return aoc.Sum(counts...)
}
