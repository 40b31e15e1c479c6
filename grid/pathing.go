package grid

import "container/heap"

// MoveResult tells whether MoveCell swapped the two cells.
type MoveResult uint8

const (
	Moved MoveResult = iota
	NoPath
)

func (r MoveResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "no path"
}

// PositionSet is a set of positions.
type PositionSet map[Position]struct{}

func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) add(p Position) {
	s[p] = struct{}{}
}

// AllowedMovingPositions returns the positions to highlight while a letter
// at from is being dragged. Starting from from, every neighbor of a visited
// cell is included, but the search only goes on through empty cells. So the
// letters bordering the reachable empty region are part of the set too.
func (g *Grid) AllowedMovingPositions(from Position) PositionSet {
	allowed := PositionSet{from: {}}
	stack := []Position{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			next, ok := g.Neighbor(cur, d)
			if !ok || allowed.Contains(next) {
				continue
			}
			allowed.add(next)
			if g.IsEmpty(next) {
				stack = append(stack, next)
			}
		}
	}
	return allowed
}

// PathExists returns true if to can be reached from from by going through
// empty cells only. The two endpoints themselves may hold letters.
func (g *Grid) PathExists(from, to Position) bool {
	if from == to {
		return true
	}
	checked := make([]bool, len(g.cells))
	checked[g.index(from)] = true
	stack := []Position{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			next, ok := g.Neighbor(cur, d)
			if !ok {
				continue
			}
			if next == to {
				return true
			}
			if checked[g.index(next)] {
				continue
			}
			checked[g.index(next)] = true
			if g.IsEmpty(next) {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// MoveCell swaps the contents of from and to if a path joins them.
func (g *Grid) MoveCell(from, to Position) MoveResult {
	if !g.PathExists(from, to) {
		return NoPath
	}
	fi, ti := g.index(from), g.index(to)
	g.cells[fi], g.cells[ti] = g.cells[ti], g.cells[fi]
	return Moved
}

// pathCandidate is a partial path in the search queue. seq keeps the queue
// first-in first-out among paths of the same length.
type pathCandidate struct {
	path []Position
	seq  int
}

type pathQueue []*pathCandidate

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if len(pq[i].path) != len(pq[j].path) {
		return len(pq[i].path) < len(pq[j].path)
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathQueue) Push(x any) { *pq = append(*pq, x.(*pathCandidate)) }

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

func pathContains(path []Position, p Position) bool {
	for _, pp := range path {
		if pp == p {
			return true
		}
	}
	return false
}

// MostDirectPath returns the shortest path from from to to that only goes
// through empty cells (the endpoints excepted). Among the shortest paths it
// picks the one with the fewest turns; the first one found wins a tie. It
// returns false if no such path exists.
func (g *Grid) MostDirectPath(from, to Position) ([]Position, bool) {
	if from == to {
		return []Position{from}, true
	}
	if !g.PathExists(from, to) {
		return nil, false
	}

	var shortest [][]Position
	// best[i] is the length of the shortest partial path seen ending on
	// cell i. A longer partial path to the same cell cannot be the prefix of
	// a shortest path.
	best := make([]int, len(g.cells))
	best[g.index(from)] = 1

	seq := 0
	pq := &pathQueue{}
	heap.Push(pq, &pathCandidate{path: []Position{from}, seq: seq})

	for pq.Len() > 0 {
		candidate := heap.Pop(pq).(*pathCandidate)
		// The queue is ordered by length: once a path of length L is known,
		// a candidate of length L-1 or more can only produce longer ones.
		if len(shortest) > 0 && len(shortest[0]) < len(candidate.path)+1 {
			break
		}
		head := candidate.path[len(candidate.path)-1]
		if head != from && !g.IsEmpty(head) {
			continue
		}
		for _, d := range Directions {
			next, ok := g.Neighbor(head, d)
			if !ok {
				continue
			}
			if next == to {
				found := make([]Position, len(candidate.path)+1)
				copy(found, candidate.path)
				found[len(found)-1] = next
				shortest = append(shortest, found)
				continue
			}
			if pathContains(candidate.path, next) {
				continue
			}
			n := len(candidate.path) + 1
			if b := best[g.index(next)]; b != 0 && b < n {
				continue
			}
			best[g.index(next)] = n
			extended := make([]Position, n)
			copy(extended, candidate.path)
			extended[n-1] = next
			seq++
			heap.Push(pq, &pathCandidate{path: extended, seq: seq})
		}
	}

	if len(shortest) == 0 {
		return nil, false
	}
	bestPath := shortest[0]
	bestAngles := NumberOfAngles(bestPath)
	for _, p := range shortest[1:] {
		if a := NumberOfAngles(p); a < bestAngles {
			bestPath, bestAngles = p, a
		}
	}
	return bestPath, true
}

// NumberOfAngles counts the turns of a path of adjacent positions.
func NumberOfAngles(path []Position) int {
	angles := 0
	for i := 2; i < len(path); i++ {
		prevVertical := path[i-1].X == path[i-2].X
		vertical := path[i].X == path[i-1].X
		if prevVertical != vertical {
			angles++
		}
	}
	return angles
}
