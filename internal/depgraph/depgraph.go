// Package depgraph builds a request-scoped directed dependency graph over a
// validated task batch and derives the two graph facts the scoring pipeline
// needs: per-task fan-in and circular dependency groups.
package depgraph

import (
	"sort"

	"triage/internal/task"
)

// Graph is an adjacency-mapping view of one task batch. Edges point from a
// task to the dependencies that resolve to other tasks in the same batch;
// unresolved identifiers contribute no edges. Self-edges are retained.
type Graph struct {
	order     []string            // task ids in input order
	adjacency map[string][]string // id → resolved dependency ids, input order
	fanIn     map[string]int      // id → number of other tasks depending on it
}

// Build constructs the graph for a batch of validated tasks. Dependency
// identifiers are matched on their canonical string form, so an integer id
// and its string rendering refer to the same task.
func Build(tasks []task.Task) *Graph {
	g := &Graph{
		order:     make([]string, 0, len(tasks)),
		adjacency: make(map[string][]string, len(tasks)),
		fanIn:     make(map[string]int, len(tasks)),
	}

	present := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		id := t.ID.String()
		g.order = append(g.order, id)
		present[id] = true
	}

	for _, t := range tasks {
		id := t.ID.String()
		var edges []string
		for _, dep := range t.DependencyIDs() {
			if !present[dep] {
				continue
			}
			edges = append(edges, dep)
			// A task depending on itself is a trivial cycle, not a dependent.
			if dep != id {
				g.fanIn[dep]++
			}
		}
		g.adjacency[id] = edges
	}

	return g
}

// FanIn returns the number of other tasks in the batch whose dependency set
// includes id.
func (g *Graph) FanIn(id string) int {
	return g.fanIn[id]
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// CycleGroups detects circular dependency groups using an iterative
// three-color depth-first search (white=unvisited, gray=on stack,
// black=done). Hitting a gray node captures every node on the traversal
// stack between that node and the top as one group; groups sharing a node
// are merged. Groups are ordered by discovery and each group's members are
// sorted. Runs in O(V+E).
func (g *Graph) CycleGroups() [][]string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.order))

	var (
		groups  []map[string]bool
		groupOf = make(map[string]int)
	)

	record := func(members []string) {
		target := -1
		for _, m := range members {
			if idx, ok := groupOf[m]; ok {
				target = idx
				break
			}
		}
		if target < 0 {
			groups = append(groups, make(map[string]bool, len(members)))
			target = len(groups) - 1
		}
		for _, m := range members {
			groups[target][m] = true
			groupOf[m] = target
		}
	}

	type frame struct {
		id   string
		next int
	}

	for _, root := range g.order {
		if color[root] != white {
			continue
		}

		stack := []frame{{id: root}}
		color[root] = gray
		path := []string{root}
		pathPos := map[string]int{root: 0}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g.adjacency[top.id]

			if top.next < len(edges) {
				dep := edges[top.next]
				top.next++

				switch color[dep] {
				case white:
					color[dep] = gray
					stack = append(stack, frame{id: dep})
					pathPos[dep] = len(path)
					path = append(path, dep)
				case gray:
					record(path[pathPos[dep]:])
				}
				continue
			}

			color[top.id] = black
			delete(pathPos, top.id)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}

	result := make([][]string, 0, len(groups))
	for _, set := range groups {
		members := make([]string, 0, len(set))
		for m := range set {
			members = append(members, m)
		}
		sort.Strings(members)
		result = append(result, members)
	}
	return result
}
