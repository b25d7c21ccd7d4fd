package aoc

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First 12 bytes of the 2024 day 18 example.
var fallenBytes = []Pt{
	{5, 4}, {4, 2}, {4, 5}, {3, 0}, {2, 1}, {6, 3},
	{2, 4}, {1, 5}, {0, 6}, {3, 3}, {2, 6}, {5, 1},
}

const smallMaze = `
###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const largeMaze = `
#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func blockedGrid(size int, blocked []Pt) func(Pt) []Neighbor[Pt] {
	walls := make(map[Pt]bool)
	for _, p := range blocked {
		walls[p] = true
	}
	return func(p Pt) []Neighbor[Pt] {
		var out []Neighbor[Pt]
		p.ForImmediateNeighbors(func(n Pt) bool {
			if n.X >= 0 && n.Y >= 0 && n.X < size && n.Y < size && !walls[n] {
				out = append(out, Neighbor[Pt]{n, 1})
			}
			return true
		})
		return out
	}
}

type maze struct {
	g          Grid[byte]
	start, end Pt
}

func parseMaze(t *testing.T, s string) maze {
	t.Helper()
	g := ParseGrid(s)
	start, ok := Find(g, 'S')
	require.True(t, ok, "maze has a start")
	end, ok := Find(g, 'E')
	require.True(t, ok, "maze has an end")
	return maze{g, start, end}
}

func (m maze) neighbors(p Pose) []Neighbor[Pose] {
	var out []Neighbor[Pose]
	if next, ok := m.g.Move(p); ok && m.g.At(next.Pt) != '#' {
		out = append(out, Neighbor[Pose]{next, 1})
	}
	out = append(out,
		Neighbor[Pose]{Pose{p.Pt, p.Dir.Turn(true)}, 1000},
		Neighbor[Pose]{Pose{p.Pt, p.Dir.Turn(false)}, 1000},
	)
	return out
}

func (m maze) startPose() Pose { return Pose{m.start, Right} }

func (m maze) atEnd(p Pose) bool { return p.Pt == m.end }

func TestShortestPathBlockedGrid(t *testing.T) {
	expand := blockedGrid(7, fallenBytes)
	goal := Pt{6, 6}
	cost, path, ok := ShortestPath(Pt{}, expand, func(p Pt) bool { return p == goal })
	require.True(t, ok)
	assert.Equal(t, 22, cost)
	require.Len(t, path, 23)
	assert.Equal(t, Pt{}, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].MDist(path[i]), "step %d is a single move", i)
		assert.NotContains(t, fallenBytes, path[i])
	}
}

func TestShortestPathTurnPenalty(t *testing.T) {
	tests := []struct {
		name  string
		maze  string
		cost  int
		tiles int
	}{
		{"small", smallMaze, 7036, 45},
		{"large", largeMaze, 11048, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseMaze(t, tt.maze)

			cost, path, ok := ShortestPath(m.startPose(), m.neighbors, m.atEnd)
			require.True(t, ok)
			assert.Equal(t, tt.cost, cost)

			sum := 0
			for i := 1; i < len(path); i++ {
				if path[i].Pt == path[i-1].Pt {
					sum += 1000
				} else {
					sum++
				}
			}
			assert.Equal(t, cost, sum, "cost is the sum of the edges along the path")

			allCost, states, ok := AllShortestPaths(m.startPose(), m.neighbors, m.atEnd)
			require.True(t, ok)
			assert.Equal(t, tt.cost, allCost)
			tiles := map[Pt]bool{}
			for s := range states {
				tiles[s.Pt] = true
			}
			assert.Len(t, tiles, tt.tiles)
			for _, s := range path {
				assert.True(t, states[s], "%v from the single path is in the set", s)
			}
		})
	}
}

func TestShortestPathPrefixesAreOptimal(t *testing.T) {
	m := parseMaze(t, smallMaze)
	_, path, ok := ShortestPath(m.startPose(), m.neighbors, m.atEnd)
	require.True(t, ok)

	prefix := 0
	for i, s := range path {
		if i > 0 {
			if s.Pt == path[i-1].Pt {
				prefix += 1000
			} else {
				prefix++
			}
		}
		cost, _, ok := ShortestPath(m.startPose(), m.neighbors, func(p Pose) bool { return p == s })
		require.True(t, ok)
		assert.Equal(t, prefix, cost, "prefix up to %v", s)
	}
}

func TestAllShortestPathsStatesAreWithinOptimum(t *testing.T) {
	m := parseMaze(t, smallMaze)
	best, states, ok := AllShortestPaths(m.startPose(), m.neighbors, m.atEnd)
	require.True(t, ok)
	for s := range states {
		cost, _, ok := ShortestPath(m.startPose(), m.neighbors, func(p Pose) bool { return p == s })
		require.True(t, ok)
		assert.LessOrEqual(t, cost, best)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	goal := Pt{3, 3}
	walls := []Pt{{3, 2}, {2, 3}, {4, 3}, {3, 4}}
	expand := blockedGrid(7, walls)
	isGoal := func(p Pt) bool { return p == goal }

	_, path, ok := ShortestPath(Pt{}, expand, isGoal)
	assert.False(t, ok)
	assert.Nil(t, path)

	_, states, ok := AllShortestPaths(Pt{}, expand, isGoal)
	assert.False(t, ok)
	assert.Nil(t, states)
}

func TestShortestPathStartIsGoal(t *testing.T) {
	expand := blockedGrid(3, nil)
	isGoal := func(p Pt) bool { return p == Pt{1, 1} }

	cost, path, ok := ShortestPath(Pt{1, 1}, expand, isGoal)
	require.True(t, ok)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []Pt{{1, 1}}, path)

	cost, states, ok := AllShortestPaths(Pt{1, 1}, expand, isGoal)
	require.True(t, ok)
	assert.Equal(t, 0, cost)
	assert.Equal(t, map[Pt]bool{{1, 1}: true}, states)
}

func adjacency(edges map[string][]Neighbor[string]) func(string) []Neighbor[string] {
	return func(s string) []Neighbor[string] { return edges[s] }
}

func isT(s string) bool { return s == "t" }

func TestDiamond(t *testing.T) {
	expand := adjacency(map[string][]Neighbor[string]{
		"s": {{"a", 1}, {"b", 1}},
		"a": {{"t", 1}},
		"b": {{"t", 1}},
	})

	cost, path, ok := ShortestPath("s", expand, isT)
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	// Ties go to the branch discovered first.
	assert.Equal(t, []string{"s", "a", "t"}, path)

	cost, states, ok := AllShortestPaths("s", expand, isT)
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	assert.Equal(t, map[string]bool{"s": true, "a": true, "b": true, "t": true}, states)
}

func TestDiamondUnequalBranches(t *testing.T) {
	expand := adjacency(map[string][]Neighbor[string]{
		"s": {{"a", 1}, {"b", 2}},
		"a": {{"t", 5}},
		"b": {{"t", 1}},
	})

	cost, path, ok := ShortestPath("s", expand, isT)
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	assert.Equal(t, []string{"s", "b", "t"}, path)

	_, states, ok := AllShortestPaths("s", expand, isT)
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"s": true, "b": true, "t": true}, states)
}

func TestAllShortestPathsReplacesWorsePredecessors(t *testing.T) {
	// m is first reached through x at cost 5, then through y at cost 2.
	expand := adjacency(map[string][]Neighbor[string]{
		"s": {{"x", 1}, {"y", 1}},
		"x": {{"m", 4}},
		"y": {{"m", 1}},
		"m": {{"t", 1}},
	})
	cost, states, ok := AllShortestPaths("s", expand, isT)
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	assert.Equal(t, map[string]bool{"s": true, "y": true, "m": true, "t": true}, states)
}

func TestAllShortestPathsGoalsBehindGoals(t *testing.T) {
	expand := adjacency(map[string][]Neighbor[string]{
		"s":  {{"g1", 1}, {"x", 1}},
		"g1": {{"g2", 0}},
		"x":  {{"g3", 1}},
	})
	isGoal := func(s string) bool { return s[0] == 'g' }

	cost, path, ok := ShortestPath("s", expand, isGoal)
	require.True(t, ok)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []string{"s", "g1"}, path)

	_, states, ok := AllShortestPaths("s", expand, isGoal)
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"s": true, "g1": true, "g2": true}, states)
}

func TestShortestPathIsDeterministic(t *testing.T) {
	m := parseMaze(t, largeMaze)
	cost1, path1, ok1 := ShortestPath(m.startPose(), m.neighbors, m.atEnd)
	cost2, path2, ok2 := ShortestPath(m.startPose(), m.neighbors, m.atEnd)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, cost1, cost2)
	assert.Equal(t, path1, path2)
}

func TestShortestPathUnboundedGraph(t *testing.T) {
	// Every integer is a state; only the visited ones may be expanded.
	expanded := 0
	expand := func(n int) []Neighbor[int] {
		expanded++
		return []Neighbor[int]{{n - 1, 1}, {n + 1, 1}, {n * 2, 1}}
	}
	cost, path, ok := ShortestPath(1, expand, func(n int) bool { return n == 16 })
	require.True(t, ok)
	assert.Equal(t, 4, cost)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, path)
	assert.Less(t, expanded, 1000)
}

func TestWithHeuristic(t *testing.T) {
	expand := blockedGrid(7, fallenBytes)
	goal := Pt{6, 6}
	isGoal := func(p Pt) bool { return p == goal }

	var plain, guided Stats
	cost, _, ok := ShortestPath(Pt{}, expand, isGoal, WithStats[Pt](&plain))
	require.True(t, ok)
	hcost, _, ok := ShortestPath(Pt{}, expand, isGoal,
		WithStats[Pt](&guided),
		WithHeuristic(func(p Pt) int { return p.MDist(goal) }),
	)
	require.True(t, ok)
	assert.Equal(t, cost, hcost)
	assert.LessOrEqual(t, guided.Expanded, plain.Expanded)
	assert.Positive(t, plain.Pushed)

	_, states, ok := AllShortestPaths(Pt{}, expand, isGoal,
		WithHeuristic(func(p Pt) int { return p.MDist(goal) }),
	)
	require.True(t, ok)
	_, unguided, ok := AllShortestPaths(Pt{}, expand, isGoal)
	require.True(t, ok)
	assert.Equal(t, unguided, states)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, _, ok := ShortestPath("s", adjacency(map[string][]Neighbor[string]{
		"s": {{"t", 1}},
	}), isT, WithLogger[string](logger))
	require.True(t, ok)
	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), `"mode":"single"`)
}

// Negative costs are out of contract and not checked. The search still
// terminates on an acyclic graph, but the reported cost is not minimal:
// t is popped at cost 3 before b's negative edge is ever expanded, while
// s→b→a→t costs -4.
func TestNegativeCostIsOutOfContract(t *testing.T) {
	edges := map[string][]Neighbor[string]{
		"s": {{"a", 2}, {"b", 5}},
		"b": {{"a", -10}},
		"a": {{"t", 1}},
	}
	expand := func(s string) []Neighbor[string] { return edges[s] }
	isGoal := func(s string) bool { return s == "t" }

	var (
		cost int
		path []string
		ok   bool
	)
	require.NotPanics(t, func() { cost, path, ok = ShortestPath("s", expand, isGoal) })
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	assert.Equal(t, []string{"s", "a", "t"}, path)
}
