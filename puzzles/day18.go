package puzzles

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gridwalk/aoc"
)

// ErrNeverBlocked is returned by FirstBlocker when the exit stays reachable
// after every byte has fallen.
var ErrNeverBlocked = errors.New("exit never blocked")

// ParseBytes parses one "x,y" coordinate per line.
func ParseBytes(s string) ([]aoc.Pt, error) {
	var out []aoc.Pt
	for i, line := range strings.Split(aoc.TrimNewlines(s), "\n") {
		p, err := ParseByte(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseByte parses a single "x,y" coordinate.
func ParseByte(line string) (aoc.Pt, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return aoc.Pt{}, fmt.Errorf("cannot split %q into x and y", line)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return aoc.Pt{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return aoc.Pt{}, err
	}
	return aoc.Pt{X: x, Y: y}, nil
}

// Memory is a size×size memory space with some corrupted cells. The
// walk goes from the top-left corner to the bottom-right one.
type Memory struct {
	corrupt aoc.Grid[bool]
}

// NewMemory returns a memory space in which the given bytes have fallen.
// Bytes outside the space are ignored.
func NewMemory(size int, fallen []aoc.Pt) *Memory {
	m := &Memory{corrupt: aoc.MakeGrid[bool](size, size)}
	for _, p := range fallen {
		if m.corrupt.InBounds(p) {
			m.corrupt.Set(p, true)
		}
	}
	return m
}

func (m *Memory) exit() aoc.Pt {
	return m.corrupt.Size().Add(aoc.Pt{X: -1, Y: -1})
}

func (m *Memory) free(p aoc.Pt) bool {
	c, ok := m.corrupt.AtOk(p)
	return ok && !c
}

func (m *Memory) neighbors(p aoc.Pt) []aoc.Neighbor[aoc.Pt] {
	out := make([]aoc.Neighbor[aoc.Pt], 0, len(aoc.Directions))
	for _, d := range aoc.Directions {
		if n := p.Add(d.Delta()); m.free(n) {
			out = append(out, aoc.Neighbor[aoc.Pt]{State: n, Cost: 1})
		}
	}
	return out
}

// Steps returns the minimum number of steps to the exit.
func (m *Memory) Steps(opts ...aoc.Option[aoc.Pt]) (int, bool) {
	start, exit := aoc.Pt{}, m.exit()
	if !m.free(start) || !m.free(exit) {
		return 0, false
	}
	opts = append([]aoc.Option[aoc.Pt]{
		aoc.WithHeuristic(func(p aoc.Pt) int { return p.MDist(exit) }),
	}, opts...)
	cost, _, ok := aoc.ShortestPath(start, m.neighbors, func(p aoc.Pt) bool { return p == exit }, opts...)
	return cost, ok
}

// MinSteps returns the shortest walk once the first n bytes have fallen.
func MinSteps(fallen []aoc.Pt, size, n int) (int, error) {
	n = min(n, len(fallen))
	steps, ok := NewMemory(size, fallen[:n]).Steps()
	if !ok {
		return 0, fmt.Errorf("after %d bytes: %w", n, ErrNoPath)
	}
	return steps, nil
}

// FirstBlocker returns the first byte whose fall cuts the exit off. The
// first skip bytes are known to leave a path open and are not checked.
func FirstBlocker(fallen []aoc.Pt, size, skip int) (aoc.Pt, error) {
	skip = min(max(skip, 0), len(fallen))
	// Blocking is monotonic in the number of fallen bytes.
	n := skip + sort.Search(len(fallen)-skip, func(i int) bool {
		_, ok := NewMemory(size, fallen[:skip+i+1]).Steps()
		return !ok
	})
	if n == len(fallen) {
		return aoc.Pt{}, ErrNeverBlocked
	}
	return fallen[n], nil
}
