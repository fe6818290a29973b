package main

import (
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// NodeID is the index of a node in a RoadGraph
type NodeID int

// RoadNode is one node of the road network
type RoadNode struct {
	ID       NodeID    `json:"id"`
	Point    orb.Point `json:"point"`              // normalized position
	Location orb.Point `json:"location"`           // lon/lat, if known
	Edges    []NodeID  `json:"edges"`              // IDs of adjacent nodes
}

// RoadGraph is an immutable road network with a nearest-node index. The only
// mutable part is the last published path, which is guarded by a mutex.
type RoadGraph struct {
	Nodes       []RoadNode
	Bounds      orb.Bound // lon/lat extent of the network
	metricScale float64
	index       *NodeIndex

	mu   sync.RWMutex
	path Path
}

// NewRoadGraph validates the nodes, makes every edge bidirectional and builds
// the spatial index. A metricScale <= 0 is derived from the bounds.
func NewRoadGraph(nodes []RoadNode, bounds orb.Bound, metricScale float64) (*RoadGraph, error) {
	adjacency := make([]map[NodeID]bool, len(nodes))
	for i, node := range nodes {
		if node.ID != NodeID(i) {
			return nil, errors.Errorf("node at index %d has id %d", i, node.ID)
		}
		adjacency[i] = make(map[NodeID]bool, len(node.Edges))
	}
	for i, node := range nodes {
		for _, to := range node.Edges {
			if to < 0 || int(to) >= len(nodes) {
				return nil, errors.Wrapf(ErrUnknownNode, "edge %d-%d", i, to)
			}
			if to == NodeID(i) {
				continue
			}
			adjacency[i][to] = true
			adjacency[to][NodeID(i)] = true
		}
	}

	g := &RoadGraph{
		Nodes:       make([]RoadNode, len(nodes)),
		Bounds:      bounds,
		metricScale: metricScale,
	}
	for i, node := range nodes {
		edges := make([]NodeID, 0, len(adjacency[i]))
		for to := range adjacency[i] {
			edges = append(edges, to)
		}
		sort.Slice(edges, func(a, b int) bool { return edges[a] < edges[b] })
		node.Edges = edges
		g.Nodes[i] = node
	}
	if g.metricScale <= 0 {
		g.metricScale = MetricScaleFromBounds(bounds)
	}
	g.index = NewNodeIndex(g.Nodes)
	return g, nil
}

// FindClosestNode returns the node nearest to the normalized coordinate (x, y)
func (g *RoadGraph) FindClosestNode(x, y float64) (NodeID, error) {
	if len(g.Nodes) == 0 {
		return noParent, ErrEmptyGraph
	}
	id, ok := g.index.Nearest(x, y)
	if !ok {
		return noParent, ErrEmptyGraph
	}
	return id, nil
}

// FindNeighbors returns a copy of the adjacency list of id
func (g *RoadGraph) FindNeighbors(id NodeID) []NodeID {
	if id < 0 || int(id) >= len(g.Nodes) {
		return nil
	}
	edges := g.Nodes[id].Edges
	neighbors := make([]NodeID, len(edges))
	copy(neighbors, edges)
	return neighbors
}

// Distance is the euclidean distance between two nodes in normalized units
func (g *RoadGraph) Distance(a, b NodeID) float64 {
	return planar.Distance(g.Nodes[a].Point, g.Nodes[b].Point)
}

func (g *RoadGraph) MetricScale() float64 { return g.metricScale }

func (g *RoadGraph) Position(id NodeID) orb.Point { return g.Nodes[id].Point }

func (g *RoadGraph) NodeCount() int { return len(g.Nodes) }

// Location returns the lon/lat of a node, falling back to its normalized
// position when the graph carries no geographic coordinates.
func (g *RoadGraph) Location(id NodeID) orb.Point {
	node := g.Nodes[id]
	if node.Location == (orb.Point{}) {
		return node.Point
	}
	return node.Location
}

// PublishPath stores the path as the graph's latest route
func (g *RoadGraph) PublishPath(path Path) {
	g.mu.Lock()
	g.path = path
	g.mu.Unlock()
}

// LastPath returns the most recently published path
func (g *RoadGraph) LastPath() Path {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.path
}

// EdgeCount counts undirected edges
func (g *RoadGraph) EdgeCount() int {
	count := 0
	for _, node := range g.Nodes {
		count += len(node.Edges)
	}
	return count / 2
}
