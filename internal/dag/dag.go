// SPDX-License-Identifier: MPL-2.0

// Package dag builds directed graphs over catalog module names and orders them
// with Kahn's algorithm. The resolver never needs it: resolution tolerates
// cycles by design. It exists so that `stylereg catalog check` can report the
// requirement cycles that resolution silently breaks.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError reports the nodes left unordered after Kahn's algorithm
	// drained every node with no incoming edges. Every cycle in the graph is
	// contained in Cycle, along with nodes that only depend on a cycle.
	CycleError struct {
		Cycle []string
	}

	// Graph is a directed graph keyed by module name. An edge from A to B
	// means A must be emitted before B, i.e. B requires A.
	Graph struct {
		adjacency map[string][]string
		// nodes keeps insertion order so results are deterministic.
		nodes   []string
		nodeSet map[string]bool
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("module requirement cycle: %s", strings.Join(e.Cycle, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

// FromRequirements builds a graph from modules in declaration order.
// requires returns the declared requirements of a module; requirements that
// are not themselves in names are skipped, mirroring the resolver's
// permissive handling of unknown modules.
func FromRequirements(names []string, requires func(name string) []string) *Graph {
	g := New()
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
		g.AddNode(name)
	}
	for _, name := range names {
		for _, dep := range requires(name) {
			if known[dep] {
				g.AddEdge(dep, name)
			}
		}
	}
	return g
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds from -> to, adding either node if missing.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// HasNode reports whether name has been added.
func (g *Graph) HasNode(name string) bool {
	return g.nodeSet[name]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// TopologicalSort returns every node ordered so that each edge's source
// precedes its target. Nodes at the same depth keep insertion order.
// A *CycleError is returned when no complete order exists.
func (g *Graph) TopologicalSort() ([]string, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[string]int, len(g.nodes))
	for _, targets := range g.adjacency {
		for _, to := range targets {
			inDegree[to]++
		}
	}

	queue := make([]string, 0, len(g.nodes))
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, to := range g.adjacency[node] {
			inDegree[to]--
			if inDegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) == len(g.nodes) {
		return order, nil
	}

	var stuck []string
	for _, node := range g.nodes {
		if inDegree[node] > 0 {
			stuck = append(stuck, node)
		}
	}
	return nil, &CycleError{Cycle: stuck}
}
