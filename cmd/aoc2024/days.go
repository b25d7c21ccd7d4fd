package main

import (
	"fmt"

	"github.com/gridwalk/aoc"
	"github.com/gridwalk/aoc/puzzles"
)

type solver struct {
	*aoc.Puzzle
}

// param returns the configured value of name, falling back to the sample or
// input default for the current mode.
func (s solver) param(name string, sample, input int) int {
	def := input
	if s.SampleMode {
		def = sample
	}
	return s.Param(name, def)
}

func (s solver) maze() *puzzles.Maze {
	g := s.Grid()
	s.Debug("maze ", g.Size(), " hash ", g.Hash())
	return aoc.MustGet(puzzles.NewMaze(g))
}

func (s solver) fallenBytes() []aoc.Pt {
	var fallen []aoc.Pt
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		fallen = append(fallen, aoc.MustGet(puzzles.ParseByte(line)))
	})
	return fallen
}

func (s solver) track() []aoc.Pt {
	path := aoc.MustGet(aoc.MustGet(puzzles.NewTrack(s.Grid())).Path())
	s.Debugf("day %d track length %d", s.Day(), len(path)-1)
	return path
}

/*
want=7036

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
*/
func (s solver) D16p1() any {
	m := s.maze()
	return aoc.MustGet(m.LowestScore(aoc.WithLogger[aoc.Pose](s.Logger())))
}

// want=45
func (s solver) D16p2() any {
	m := s.maze()
	return aoc.MustGet(m.BestSeats(aoc.WithLogger[aoc.Pose](s.Logger())))
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	fallen := s.fallenBytes()
	return aoc.MustGet(puzzles.MinSteps(fallen, s.param("size", 7, 71), s.param("bytes", 12, 1024)))
}

// want=6,1
func (s solver) D18p2() any {
	fallen := s.fallenBytes()
	p := aoc.MustGet(puzzles.FirstBlocker(fallen, s.param("size", 7, 71), s.param("bytes", 12, 1024)))
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

/*
want=44

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	return puzzles.CountCheats(s.track(), 2, s.param("p1_min_save", 2, 100))
}

// want=285
func (s solver) D20p2() any {
	return puzzles.CountCheats(s.track(), 20, s.param("p2_min_save", 50, 100))
}
