package main

import (
	"container/heap"
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// stepCost is the cost of one edge during the search. The search counts hops;
// physical distance is only summed up when the path is built.
const stepCost = 1.0

// noParent marks the start node of a search
const noParent NodeID = -1

// RouteModel is the road network a PathSearcher runs on
type RouteModel interface {
	// FindClosestNode snaps a normalized coordinate to the nearest node.
	FindClosestNode(x, y float64) (NodeID, error)
	// FindNeighbors returns the nodes adjacent to id.
	FindNeighbors(id NodeID) []NodeID
	// Distance is the symmetric, non-negative distance between two nodes in graph units.
	Distance(a, b NodeID) float64
	// MetricScale converts graph units to metres.
	MetricScale() float64
	Position(id NodeID) orb.Point
	NodeCount() int
}

// PathSink receives the path of a finished search
type PathSink interface {
	PublishPath(path Path)
}

// PathNode is a snapshot of one node on a found path
type PathNode struct {
	ID    NodeID    `json:"id"`
	Point orb.Point `json:"point"`
	G     float64   `json:"g"`
	H     float64   `json:"h"`
}

// Path is an ordered route from start to goal
type Path struct {
	Nodes  []PathNode `json:"nodes"`
	Cost   float64    `json:"cost"`   // graph cost of the goal, in hops
	Length float64    `json:"length"` // metres
}

// SearchState is the state of a PathSearcher
type SearchState int

const (
	Searching SearchState = iota
	Done
	Failed
)

func (s SearchState) String() string {
	switch s {
	case Searching:
		return "searching"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// SearchStats counts the work done by one search
type SearchStats struct {
	Expanded     int `json:"expanded"`
	Discovered   int `json:"discovered"`
	FrontierPeak int `json:"frontierPeak"`
}

// PathSearcher runs one A* search between two coordinates on a RouteModel.
//
// Costs, estimates, parents and visited flags live in an arena owned by the
// searcher, so the model is only read and several searchers may share it.
// A node's cost is assigned once, when it is first discovered, and is never
// relaxed afterwards; the returned path is therefore not guaranteed to be the
// cheapest one when a node is reachable through several routes.
type PathSearcher struct {
	model RouteModel
	opts  searchOptions

	start NodeID
	end   NodeID

	nodes []searchNode
	open  *frontier

	state SearchState
	ran   bool
	stats SearchStats
}

// NewPathSearcher resolves the start and end coordinates to their nearest nodes.
// Coordinates are in the same normalized space as the node positions.
func NewPathSearcher(model RouteModel, startX, startY, endX, endY float64, options ...Option) (*PathSearcher, error) {
	opts := searchOptions{logger: zap.NewNop()}
	for _, o := range options {
		o(&opts)
	}

	start, err := model.FindClosestNode(startX, startY)
	if err != nil {
		return nil, errors.Wrapf(ErrUnresolvableCoordinate, "start (%g, %g): %v", startX, startY, err)
	}
	end, err := model.FindClosestNode(endX, endY)
	if err != nil {
		return nil, errors.Wrapf(ErrUnresolvableCoordinate, "end (%g, %g): %v", endX, endY, err)
	}

	nodes := make([]searchNode, model.NodeCount())
	for i := range nodes {
		nodes[i].parent = noParent
	}
	s := &PathSearcher{
		model: model,
		opts:  opts,
		start: start,
		end:   end,
		nodes: nodes,
		open:  &frontier{nodes: nodes},
		state: Searching,
	}
	if !s.known(start) || !s.known(end) {
		return nil, errors.Wrapf(ErrUnresolvableCoordinate, "resolved nodes %d, %d: %v", start, end, ErrUnknownNode)
	}

	// the start node counts as visited so it is never put back on the frontier
	s.nodes[start].h = s.EstimateRemainingCost(start)
	s.nodes[start].visited = true
	s.stats.Discovered = 1
	return s, nil
}

// StartNode is the node nearest the start coordinate
func (s *PathSearcher) StartNode() NodeID { return s.start }

// EndNode is the node nearest the end coordinate
func (s *PathSearcher) EndNode() NodeID { return s.end }

func (s *PathSearcher) State() SearchState { return s.state }

func (s *PathSearcher) Stats() SearchStats { return s.stats }

func (s *PathSearcher) known(id NodeID) bool {
	return id >= 0 && int(id) < len(s.nodes)
}

// EstimateRemainingCost is the straight-line distance from id to the end node.
func (s *PathSearcher) EstimateRemainingCost(id NodeID) float64 {
	return s.model.Distance(id, s.end)
}

// ExpandNode puts every unvisited neighbour of id on the frontier, with id as
// its parent. Neighbours seen before keep their cost and parent.
func (s *PathSearcher) ExpandNode(id NodeID) error {
	if !s.known(id) {
		return errors.Wrapf(ErrUnknownNode, "expand %d", id)
	}
	current := &s.nodes[id]
	for _, neighbor := range s.model.FindNeighbors(id) {
		if !s.known(neighbor) {
			return errors.Wrapf(ErrUnknownNode, "neighbor %d of %d", neighbor, id)
		}
		next := &s.nodes[neighbor]
		if next.visited {
			continue
		}
		next.parent = id
		next.h = s.EstimateRemainingCost(neighbor)
		next.g = current.g + stepCost
		next.visited = true
		heap.Push(s.open, neighbor)
		s.stats.Discovered++
	}
	s.stats.Expanded++
	if n := s.open.Len(); n > s.stats.FrontierPeak {
		s.stats.FrontierPeak = n
	}
	return nil
}

// PopBestNode removes and returns the frontier node with the lowest g+h.
func (s *PathSearcher) PopBestNode() (NodeID, error) {
	if s.open.Len() == 0 {
		return noParent, ErrFrontierEmpty
	}
	return heap.Pop(s.open).(NodeID), nil
}

// BuildPath follows the parent links from goal back to the start. Distances
// between consecutive nodes are summed in graph units and scaled to metres once.
func (s *PathSearcher) BuildPath(goal NodeID) Path {
	ids := []NodeID{goal}
	var distance float64
	for current := goal; s.nodes[current].parent != noParent; {
		parent := s.nodes[current].parent
		distance += s.model.Distance(current, parent)
		ids = append(ids, parent)
		current = parent
	}

	nodes := make([]PathNode, len(ids))
	for i, id := range ids {
		n := s.nodes[id]
		nodes[len(ids)-1-i] = PathNode{
			ID:    id,
			Point: s.model.Position(id),
			G:     n.g,
			H:     n.h,
		}
	}

	return Path{
		Nodes:  nodes,
		Cost:   s.nodes[goal].g,
		Length: distance * s.model.MetricScale(),
	}
}

// Run searches from the start node until the end node is taken off the
// frontier, then builds the path and publishes it to the configured sinks.
// A searcher can only run once.
func (s *PathSearcher) Run(ctx context.Context) (Path, error) {
	if s.ran {
		return Path{}, ErrSearcherReused
	}
	s.ran = true

	current := s.start
	for current != s.end {
		if err := ctx.Err(); err != nil {
			return s.fail(errors.Wrap(ErrSearchAborted, err.Error()))
		}
		if s.opts.maxExpansions > 0 && s.stats.Expanded >= s.opts.maxExpansions {
			return s.fail(errors.Wrapf(ErrSearchAborted, "expanded %d nodes", s.stats.Expanded))
		}
		if err := s.ExpandNode(current); err != nil {
			return s.fail(err)
		}
		next, err := s.PopBestNode()
		if err != nil {
			return s.fail(errors.Wrapf(ErrNoPathFound, "from %d to %d", s.start, s.end))
		}
		current = next
	}

	s.state = Done
	path := s.BuildPath(current)
	for _, sink := range s.opts.sinks {
		sink.PublishPath(path)
	}

	s.opts.logger.Debug("path found",
		zap.Int("start", int(s.start)),
		zap.Int("end", int(s.end)),
		zap.Int("nodes", len(path.Nodes)),
		zap.Float64("cost", path.Cost),
		zap.Float64("meters", path.Length),
		zap.Int("expanded", s.stats.Expanded),
	)
	return path, nil
}

func (s *PathSearcher) fail(err error) (Path, error) {
	s.state = Failed
	s.opts.logger.Debug("search failed",
		zap.Int("start", int(s.start)),
		zap.Int("end", int(s.end)),
		zap.Int("expanded", s.stats.Expanded),
		zap.Error(err),
	)
	return Path{}, err
}
