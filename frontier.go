package main

// searchNode is the per-run scratch state of one graph node
type searchNode struct {
	g       float64 // cost from start, in hops
	h       float64 // straight-line estimate to the goal
	parent  NodeID
	visited bool
}

func (n *searchNode) f() float64 {
	return n.g + n.h
}

// frontier implements heap.Interface over node ids. Scores are read from the
// searcher's arena, which is never resized during a run.
type frontier struct {
	ids   []NodeID
	nodes []searchNode
}

func (fr *frontier) Len() int { return len(fr.ids) }

// Less orders by g+h, then by h so nodes nearer the goal go first, then by id.
func (fr *frontier) Less(i, j int) bool {
	a, b := &fr.nodes[fr.ids[i]], &fr.nodes[fr.ids[j]]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return fr.ids[i] < fr.ids[j]
}

func (fr *frontier) Swap(i, j int) {
	fr.ids[i], fr.ids[j] = fr.ids[j], fr.ids[i]
}

func (fr *frontier) Push(x interface{}) {
	fr.ids = append(fr.ids, x.(NodeID))
}

func (fr *frontier) Pop() interface{} {
	old := fr.ids
	n := len(old)
	id := old[n-1]
	fr.ids = old[0 : n-1]
	return id
}
