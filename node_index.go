package main

import (
	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half-width of the box each node occupies in the tree
const pointTolerance = 1e-9

// nodeEntry wraps a road node for R-tree storage
type nodeEntry struct {
	id   NodeID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// NodeIndex answers nearest-node queries over node positions
type NodeIndex struct {
	tree *rtreego.Rtree
}

// NewNodeIndex creates a new spatial index
func NewNodeIndex(nodes []RoadNode) *NodeIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, node := range nodes {
		tree.Insert(&nodeEntry{
			id:   node.ID,
			bbox: rtreego.Point{node.Point.X(), node.Point.Y()}.ToRect(pointTolerance),
		})
	}

	return &NodeIndex{tree: tree}
}

// Nearest returns the node closest to (x, y). It reports false for an empty index.
func (ni *NodeIndex) Nearest(x, y float64) (NodeID, bool) {
	if ni.tree.Size() == 0 {
		return 0, false
	}
	item := ni.tree.NearestNeighbor(rtreego.Point{x, y})
	if item == nil {
		return 0, false
	}
	return item.(*nodeEntry).id, true
}
