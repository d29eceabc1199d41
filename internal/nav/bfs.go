package nav

// neighborOffsets fixes the exploration order of the 4-neighborhood. Ties
// between equal-length paths are decided by this order, so it must never
// change without accepting that returned paths change too: right, left,
// down, up — the sweep the stock levels were tuned against.
var neighborOffsets = [...]Cell{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// ShortestPath runs an unweighted breadth-first search from start to end over
// the open cells of the grid. The returned path starts at start, ends at end,
// visits no cell twice, and has minimal length among all 4-connected routes.
// The second return value is false when end is unreachable; that is a normal
// planning outcome, not an error.
//
// A blocked start is tolerated so an actor standing inside an obstacle can
// still step out of it. A blocked end is unreachable by construction.
func ShortestPath(g *Grid, start, end Cell) ([]Cell, bool) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, false
	}
	if start == end {
		return []Cell{start}, true
	}

	visited := make(map[int]struct{})
	parent := make(map[int]Cell)
	queue := []Cell{start}
	visited[g.index(start)] = struct{}{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, delta := range neighborOffsets {
			next := Cell{Row: current.Row + delta.Row, Col: current.Col + delta.Col}
			if !g.InBounds(next) || g.Blocked(next) {
				continue
			}
			idx := g.index(next)
			if _, seen := visited[idx]; seen {
				continue
			}
			visited[idx] = struct{}{}
			parent[idx] = current
			if next == end {
				return reconstructPath(g, parent, start, end), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// reconstructPath walks the parent pointers back from end to start and
// reverses the result in place.
func reconstructPath(g *Grid, parent map[int]Cell, start, end Cell) []Cell {
	path := []Cell{end}
	for current := end; current != start; {
		current = parent[g.index(current)]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
