package planner

// Status tags a planning result. Wire values match the original service, so
// existing clients keep working.
type Status string

const (
	// StatusSuccess means the pursuer should move to (NextX, NextY).
	StatusSuccess Status = "success"
	// StatusNoMove means the pursuer holds its current position this tick:
	// it already shares the target's cell, or no route exists.
	StatusNoMove Status = "no_move"
	// StatusError means the request could not be planned at all.
	StatusError Status = "error"
)

// Wire reason codes attached to StatusError results.
const (
	ReasonMissingActor   = "missing_actor"
	ReasonMalformedInput = "malformed_input"
)

// Request is the world snapshot a caller submits for one planning pass. The
// jsonschema tags feed cmd/schema, which emits a machine-checkable contract
// for integrators.
type Request struct {
	Width    int             `json:"width" jsonschema:"title=Level width,minimum=1,description=Level width in pixels"`
	Height   int             `json:"height" jsonschema:"title=Level height,minimum=1,description=Level height in pixels"`
	TileSize int             `json:"grid_size" jsonschema:"title=Tile size,minimum=1,description=Tile edge length in pixels shared by the whole grid"`
	Objects  []RequestObject `json:"objects" jsonschema:"description=Positioned level objects; order only matters when duplicate actors appear (last wins)"`
}

// RequestObject is one positioned level object as it appears on the wire.
type RequestObject struct {
	Type string `json:"type" jsonschema:"description=Category tag matched case-sensitively against the classification catalog"`
	X    int    `json:"x" jsonschema:"minimum=0,description=Horizontal pixel position"`
	Y    int    `json:"y" jsonschema:"minimum=0,description=Vertical pixel position"`
}

// Result is the planning outcome. For StatusSuccess and StatusNoMove, NextX
// and NextY hold the pixel position of the cell the pursuer should occupy
// next (its own cell when holding). For StatusError only Reason is
// meaningful.
type Result struct {
	Status Status `json:"status"`
	NextX  int    `json:"next_x"`
	NextY  int    `json:"next_y"`
	Reason string `json:"reason,omitempty"`
}

// FailureResult translates an error returned by Plan into its wire form.
func FailureResult(err error) Result {
	return Result{Status: StatusError, Reason: FailureReason(err)}
}
