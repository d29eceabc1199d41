package nav

// Cell identifies one grid square by zero-indexed row and column.
type Cell struct {
	Row int
	Col int
}

// Grid is a rectangular occupancy matrix over rows x cols cells. A blocked
// cell cannot be entered by the search. Grids are built fresh for a single
// planning call, mutated only while the builder runs, and read-only afterwards.
type Grid struct {
	rows, cols int
	blocked    []bool
}

// NewGrid allocates an all-open grid. Returns nil when either dimension is
// non-positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}
}

// Rows reports the number of rows in the grid.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols reports the number of columns in the grid.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether the cell lies inside the grid rectangle.
func (g *Grid) InBounds(c Cell) bool {
	return g != nil && c.Row >= 0 && c.Col >= 0 && c.Row < g.rows && c.Col < g.cols
}

// Block marks the cell as impassable. Out-of-bounds cells are ignored.
func (g *Grid) Block(c Cell) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[g.index(c)] = true
}

// Blocked reports whether the cell is impassable. Out-of-bounds cells count
// as blocked so callers cannot walk off the grid.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
