package aoc

import (
	"slices"

	"github.com/rs/zerolog"
)

// Neighbor is a state reachable in one step from another state, along with
// the cost of that step. Costs must be non-negative.
type Neighbor[S comparable] struct {
	State S
	Cost  int
}

// Stats counts the work done by a single search.
type Stats struct {
	Pushed   int // frontier entries pushed, including the start state
	Expanded int // states whose neighbors were generated
	Stale    int // frontier entries dropped because a cheaper one was already popped
}

// Option configures ShortestPath and AllShortestPaths.
type Option[S comparable] func(*searchOpts[S])

type searchOpts[S comparable] struct {
	heuristic func(S) int
	log       zerolog.Logger
	stats     *Stats
}

// WithHeuristic turns the search into A*. h must never overestimate the
// remaining cost and must be consistent; otherwise the returned cost may not
// be minimal. The default heuristic is zero everywhere.
func WithHeuristic[S comparable](h func(S) int) Option[S] {
	return func(o *searchOpts[S]) { o.heuristic = h }
}

// WithLogger logs a summary line at debug level when the search returns.
func WithLogger[S comparable](l zerolog.Logger) Option[S] {
	return func(o *searchOpts[S]) { o.log = l }
}

// WithStats records the search counters into st.
func WithStats[S comparable](st *Stats) Option[S] {
	return func(o *searchOpts[S]) { o.stats = st }
}

func buildOpts[S comparable](opts []Option[S]) searchOpts[S] {
	o := searchOpts[S]{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stats == nil {
		o.stats = new(Stats)
	} else {
		*o.stats = Stats{}
	}
	return o
}

func (o *searchOpts[S]) priority(s S, cost int) int {
	if o.heuristic == nil {
		return cost
	}
	return cost + o.heuristic(s)
}

func (o *searchOpts[S]) done(mode string, cost int, ok bool) {
	o.log.Debug().
		Str("mode", mode).
		Bool("found", ok).
		Int("cost", cost).
		Int("pushed", o.stats.Pushed).
		Int("expanded", o.stats.Expanded).
		Int("stale", o.stats.Stale).
		Msg("search finished")
}

type frontier[S comparable] struct {
	state S
	cost  int
}

// ShortestPath finds a cheapest path from start to any state for which
// isGoal returns true. expand is called lazily, at most once per state.
//
// It returns the cost of the path and the states along it, start and goal
// included. ok is false if no goal is reachable.
//
// Entries with equal priority are expanded in the order they were
// discovered, so for a deterministic expand the returned path is
// deterministic too.
func ShortestPath[S comparable](start S, expand func(S) []Neighbor[S], isGoal func(S) bool, opts ...Option[S]) (cost int, path []S, ok bool) {
	o := buildOpts(opts)
	st := o.stats
	defer func() { o.done("single", cost, ok) }()

	dist := map[S]int{start: 0}
	prev := map[S]S{}

	var q PQ[frontier[S]]
	q.PushValue(frontier[S]{start, 0}, o.priority(start, 0))
	st.Pushed++
	for q.Len() > 0 {
		cur := q.Pop().V
		if cur.cost > dist[cur.state] {
			st.Stale++
			continue
		}
		if isGoal(cur.state) {
			return cur.cost, walkBack(prev, start, cur.state), true
		}
		st.Expanded++
		for _, n := range expand(cur.state) {
			c := cur.cost + n.Cost
			if d, seen := dist[n.State]; seen && c >= d {
				continue
			}
			dist[n.State] = c
			prev[n.State] = cur.state
			q.PushValue(frontier[S]{n.State, c}, o.priority(n.State, c))
			st.Pushed++
		}
	}
	return 0, nil, false
}

// walkBack follows prev from end until it reaches start and returns the
// states in start-to-end order.
func walkBack[S comparable](prev map[S]S, start, end S) []S {
	path := []S{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// AllShortestPaths is like ShortestPath but returns every state that lies on
// at least one cheapest path from start to a goal, including start and all
// goals reached at the optimal cost. ok is false if no goal is reachable.
func AllShortestPaths[S comparable](start S, expand func(S) []Neighbor[S], isGoal func(S) bool, opts ...Option[S]) (cost int, states map[S]bool, ok bool) {
	o := buildOpts(opts)
	st := o.stats
	defer func() { o.done("all", cost, ok) }()

	dist := map[S]int{start: 0}
	prev := map[S][]S{}
	best := -1
	var goals []S

	var q PQ[frontier[S]]
	q.PushValue(frontier[S]{start, 0}, o.priority(start, 0))
	st.Pushed++
	for q.Len() > 0 {
		if best >= 0 && q.Peek().P > best {
			break
		}
		cur := q.Pop().V
		if cur.cost > dist[cur.state] {
			st.Stale++
			continue
		}
		if isGoal(cur.state) {
			if best < 0 {
				best = cur.cost
			}
			if cur.cost == best {
				goals = append(goals, cur.state)
			}
		}
		// Goals are expanded too: another goal may sit behind one at no
		// extra cost.
		st.Expanded++
		for _, n := range expand(cur.state) {
			c := cur.cost + n.Cost
			d, seen := dist[n.State]
			switch {
			case !seen || c < d:
				dist[n.State] = c
				prev[n.State] = []S{cur.state}
				q.PushValue(frontier[S]{n.State, c}, o.priority(n.State, c))
				st.Pushed++
			case c == d:
				if !slices.Contains(prev[n.State], cur.state) {
					prev[n.State] = append(prev[n.State], cur.state)
				}
			}
		}
	}
	if best < 0 {
		return 0, nil, false
	}

	states = make(map[S]bool)
	var s Stack[S]
	for _, g := range goals {
		s.Push(g)
	}
	s.While(func(v S) bool {
		if states[v] {
			return true
		}
		states[v] = true
		for _, p := range prev[v] {
			s.Push(p)
		}
		return true
	})
	return best, states, true
}
