package aoc

// Graph is an undirected weighted graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// Neighbors returns the nodes adjacent to a, in map order. It has the
// signature expected by ShortestPath and AllShortestPaths.
func (g *Graph[K]) Neighbors(a K) []Neighbor[K] {
	out := make([]Neighbor[K], 0, len(g.Edges[a]))
	for k, v := range g.Edges[a] {
		out = append(out, Neighbor[K]{State: k, Cost: v})
	}
	return out
}

// ShortestPath returns a cheapest path between a and b.
func (g *Graph[K]) ShortestPath(a, b K) (cost int, path []K, ok bool) {
	if !g.Nodes[a] {
		return 0, nil, false
	}
	return ShortestPath(a, g.Neighbors, func(k K) bool { return k == b })
}

// ReachableNodes returns the nodes connected to a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}
