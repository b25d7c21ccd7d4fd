package puzzles

import (
	"fmt"

	"github.com/gridwalk/aoc"
)

const (
	stepCost = 1
	turnCost = 1000
)

// Maze is a reindeer maze. The reindeer starts on S facing east and wants to
// reach E. Moving forward costs 1 point and turning in place by 90 degrees
// costs 1000.
type Maze struct {
	grid  aoc.Grid[byte]
	Start aoc.Pt
	End   aoc.Pt
}

func ParseMaze(s string) (*Maze, error) {
	return NewMaze(aoc.ParseGrid(s))
}

// NewMaze locates S and E in g. Cells outside g count as walls.
func NewMaze(g aoc.Grid[byte]) (*Maze, error) {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		return nil, fmt.Errorf("maze has no start tile")
	}
	end, ok := aoc.Find(g, 'E')
	if !ok {
		return nil, fmt.Errorf("maze has no end tile")
	}
	return &Maze{grid: g, Start: start, End: end}, nil
}

func (m *Maze) start() aoc.Pose {
	return aoc.Pose{Pt: m.Start, Dir: aoc.Right}
}

func (m *Maze) atEnd(p aoc.Pose) bool {
	return p.Pt == m.End
}

func (m *Maze) open(p aoc.Pt) bool {
	c, ok := m.grid.AtOk(p)
	return ok && c != '#'
}

func (m *Maze) neighbors(p aoc.Pose) []aoc.Neighbor[aoc.Pose] {
	out := make([]aoc.Neighbor[aoc.Pose], 0, 3)
	if next, ok := m.grid.Move(p); ok && m.open(next.Pt) {
		out = append(out, aoc.Neighbor[aoc.Pose]{State: next, Cost: stepCost})
	}
	for _, right := range []bool{true, false} {
		out = append(out, aoc.Neighbor[aoc.Pose]{
			State: aoc.Pose{Pt: p.Pt, Dir: p.Dir.Turn(right)},
			Cost:  turnCost,
		})
	}
	return out
}

// LowestScore returns the cheapest score for getting from S to E.
func (m *Maze) LowestScore(opts ...aoc.Option[aoc.Pose]) (int, error) {
	cost, _, ok := aoc.ShortestPath(m.start(), m.neighbors, m.atEnd, opts...)
	if !ok {
		return 0, fmt.Errorf("reindeer maze: %w", ErrNoPath)
	}
	return cost, nil
}

// BestSeats returns the number of tiles that are part of at least one of
// the cheapest routes from S to E.
func (m *Maze) BestSeats(opts ...aoc.Option[aoc.Pose]) (int, error) {
	_, states, ok := aoc.AllShortestPaths(m.start(), m.neighbors, m.atEnd, opts...)
	if !ok {
		return 0, fmt.Errorf("reindeer maze: %w", ErrNoPath)
	}
	tiles := make(map[aoc.Pt]bool, len(states))
	for p := range states {
		tiles[p.Pt] = true
	}
	return len(tiles), nil
}
