// Package planner computes, per request, the next single grid-step move for
// a pursuing agent chasing a target across a 2-D tile grid with static
// obstacles. Each call reads one immutable snapshot, allocates its own grid
// and search state, and discards both; nothing persists between requests.
package planner

import (
	"context"

	"game-creator/planner/internal/nav"
	"game-creator/planner/internal/world"
	"game-creator/planner/logging"
	"game-creator/planner/logging/pursuit"
)

// Planner resolves pursuit steps against a fixed classification catalog. Its
// two fields are read-only after New, so a single Planner serves any number
// of concurrent Plan calls without locking.
type Planner struct {
	catalog   world.Catalog
	publisher logging.Publisher
}

type Option func(*Planner)

// WithCatalog overrides the object classification table.
func WithCatalog(catalog world.Catalog) Option {
	return func(p *Planner) {
		if catalog != nil {
			p.catalog = catalog
		}
	}
}

// WithPublisher routes planning outcome events to the given publisher.
func WithPublisher(pub logging.Publisher) Option {
	return func(p *Planner) {
		if pub != nil {
			p.publisher = pub
		}
	}
}

func New(opts ...Option) *Planner {
	p := &Planner{
		catalog:   world.DefaultCatalog(),
		publisher: logging.NopPublisher(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Plan runs one full planning pass: validate the snapshot, build the
// occupancy grid, search, and translate the outcome back to pixels.
//
// The returned Result is always usable for the wire: on error it carries
// StatusError and the matching reason code. NoPath is not an error — it
// comes back as StatusNoMove with the pursuer's own cell-quantized position.
func (p *Planner) Plan(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		pursuit.Rejected(ctx, p.publisher, pursuit.FailurePayload{
			Reason: ReasonMalformedInput,
			Detail: err.Error(),
		})
		return FailureResult(err), err
	}

	objects := make([]world.Object, 0, len(req.Objects))
	for _, obj := range req.Objects {
		objects = append(objects, world.Object{Type: world.ObjectType(obj.Type), X: obj.X, Y: obj.Y})
	}

	grid, start, goal, err := world.BuildOccupancy(req.Width, req.Height, req.TileSize, objects, p.catalog)
	if err != nil {
		pursuit.MissingActor(ctx, p.publisher, pursuit.FailurePayload{
			Reason: FailureReason(err),
			Detail: err.Error(),
		})
		return FailureResult(err), err
	}

	path, found := nav.ShortestPath(grid, start, goal)
	if !found || len(path) < 2 {
		pursuit.NoPath(ctx, p.publisher, pursuit.NoPathPayload{
			StartRow:  start.Row,
			StartCol:  start.Col,
			GoalRow:   goal.Row,
			GoalCol:   goal.Col,
			Colocated: found,
		})
		return Result{
			Status: StatusNoMove,
			NextX:  start.Col * req.TileSize,
			NextY:  start.Row * req.TileSize,
		}, nil
	}

	next := path[1]
	result := Result{
		Status: StatusSuccess,
		NextX:  next.Col * req.TileSize,
		NextY:  next.Row * req.TileSize,
	}
	pursuit.PathFound(ctx, p.publisher, pursuit.PathFoundPayload{
		StartRow: start.Row,
		StartCol: start.Col,
		GoalRow:  goal.Row,
		GoalCol:  goal.Col,
		PathLen:  len(path),
		NextX:    result.NextX,
		NextY:    result.NextY,
	})
	return result, nil
}

// validate rejects snapshots the grid builder must never see. Detected
// before any allocation, per the error policy: malformed input is surfaced,
// never repaired.
func (r Request) validate() error {
	switch {
	case r.Width <= 0:
		return &MalformedInputError{Field: "width", Detail: "must be positive"}
	case r.Height <= 0:
		return &MalformedInputError{Field: "height", Detail: "must be positive"}
	case r.TileSize <= 0:
		return &MalformedInputError{Field: "grid_size", Detail: "must be positive"}
	case r.Width/r.TileSize == 0 || r.Height/r.TileSize == 0:
		return &MalformedInputError{Field: "grid_size", Detail: "exceeds the level extents; grid has no cells"}
	}
	return nil
}
