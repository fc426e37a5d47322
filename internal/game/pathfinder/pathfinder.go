// Package pathfinder finds paths over an area's point graph.
package pathfinder

import (
	"container/heap"

	"github.com/Faultbox/starforge/pkg/math"
)

// Point is a graph vertex with indices of adjacent points.
type Point struct {
	Position math.Vec3
	Adjacent []int
}

// pathNode represents a node in the A* search.
type pathNode struct {
	point  int
	g      float32 // Cost from start
	f      float32 // g + heuristic
	parent *pathNode
	index  int // Index in heap
}

// pathHeap implements a priority queue for A* pathfinding.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// PathFinder routes between arbitrary points through the graph.
type PathFinder struct {
	points []Point
}

// New creates a pathfinder. Adjacency indices outside the graph are dropped
// and edges are made bidirectional.
func New(points []Point) *PathFinder {
	pts := make([]Point, len(points))
	for i, p := range points {
		pts[i].Position = p.Position
	}
	for i, p := range points {
		for _, j := range p.Adjacent {
			if j < 0 || j >= len(points) || j == i {
				continue
			}
			pts[i].Adjacent = appendUnique(pts[i].Adjacent, j)
			pts[j].Adjacent = appendUnique(pts[j].Adjacent, i)
		}
	}
	return &PathFinder{points: pts}
}

// Points returns the graph vertices.
func (pf *PathFinder) Points() []Point {
	return pf.points
}

// FindPath returns from, the graph points between the vertices nearest to
// from and to, then to. Without a graph or a connection it returns [from, to].
func (pf *PathFinder) FindPath(from, to math.Vec3) []math.Vec3 {
	if pf == nil || len(pf.points) == 0 {
		return []math.Vec3{from, to}
	}
	start := pf.nearest(from)
	goal := pf.nearest(to)

	route := pf.search(start, goal)
	if route == nil {
		return []math.Vec3{from, to}
	}

	path := make([]math.Vec3, 0, len(route)+2)
	path = append(path, from)
	for _, i := range route {
		path = append(path, pf.points[i].Position)
	}
	return append(path, to)
}

func (pf *PathFinder) nearest(p math.Vec3) int {
	best, bestDist := 0, pf.points[0].Position.XY().DistanceSquared(p.XY())
	for i := 1; i < len(pf.points); i++ {
		if d := pf.points[i].Position.XY().DistanceSquared(p.XY()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// search runs A* from start to goal and returns vertex indices.
func (pf *PathFinder) search(start, goal int) []int {
	goalPos := pf.points[goal].Position

	openSet := &pathHeap{}
	heap.Init(openSet)
	closed := make(map[int]bool)
	nodes := make(map[int]*pathNode)

	startNode := &pathNode{point: start, f: pf.points[start].Position.Distance(goalPos)}
	heap.Push(openSet, startNode)
	nodes[start] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode)
		if current.point == goal {
			return reconstruct(current)
		}
		closed[current.point] = true

		cur := pf.points[current.point]
		for _, n := range cur.Adjacent {
			if closed[n] {
				continue
			}
			g := current.g + cur.Position.Distance(pf.points[n].Position)
			neighbor, exists := nodes[n]
			if !exists {
				neighbor = &pathNode{
					point:  n,
					g:      g,
					f:      g + pf.points[n].Position.Distance(goalPos),
					parent: current,
				}
				nodes[n] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.g {
				neighbor.f += g - neighbor.g
				neighbor.g = g
				neighbor.parent = current
				heap.Fix(openSet, neighbor.index)
			}
		}
	}
	return nil
}

func reconstruct(node *pathNode) []int {
	var path []int
	for node != nil {
		path = append(path, node.point)
		node = node.parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
