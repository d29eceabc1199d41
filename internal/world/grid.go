package world

import (
	"fmt"

	"game-creator/planner/internal/nav"
)

// MissingActorError reports that no in-bounds object filled a role the
// planner cannot run without.
type MissingActorError struct {
	Role Role
}

func (e *MissingActorError) Error() string {
	return fmt.Sprintf("world: no object with role %q", e.Role)
}

// BuildOccupancy converts a level snapshot into an occupancy grid plus the
// resolved cells of the pursuer and target. Pixel extents are floored into
// cols = width/tileSize by rows = height/tileSize cells, and each object
// lands in the cell its top-left pixel falls into.
//
// Objects whose cell falls outside the grid are skipped entirely: they mark
// nothing and fill no actor slot. When several objects claim the pursuer or
// target role the last one in slice order wins; slice order is well defined,
// so the choice is deterministic (the stock dodge_em level relies on this by
// shipping multiple ai_enemy objects).
//
// The input slice is never mutated and the returned grid is freshly
// allocated per call.
func BuildOccupancy(width, height, tileSize int, objects []Object, catalog Catalog) (*nav.Grid, nav.Cell, nav.Cell, error) {
	if tileSize <= 0 {
		return nil, nav.Cell{}, nav.Cell{}, fmt.Errorf("world: tile size %d is not positive", tileSize)
	}
	grid := nav.NewGrid(height/tileSize, width/tileSize)
	if grid == nil {
		return nil, nav.Cell{}, nav.Cell{}, fmt.Errorf("world: %dx%d px at tile size %d yields no cells", width, height, tileSize)
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	var (
		pursuer, target         nav.Cell
		havePursuer, haveTarget bool
	)
	for _, obj := range objects {
		// Integer division truncates toward zero, so negative pixels would
		// alias cell 0 instead of landing out of bounds. Reject them here.
		if obj.X < 0 || obj.Y < 0 {
			continue
		}
		cell := nav.Cell{Row: obj.Y / tileSize, Col: obj.X / tileSize}
		if !grid.InBounds(cell) {
			continue
		}
		switch catalog.Role(obj.Type) {
		case RoleBlocking:
			grid.Block(cell)
		case RolePursuer:
			pursuer, havePursuer = cell, true
		case RoleTarget:
			target, haveTarget = cell, true
		}
	}

	if !havePursuer {
		return nil, nav.Cell{}, nav.Cell{}, &MissingActorError{Role: RolePursuer}
	}
	if !haveTarget {
		return nil, nav.Cell{}, nav.Cell{}, &MissingActorError{Role: RoleTarget}
	}
	return grid, pursuer, target, nil
}
