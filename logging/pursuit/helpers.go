package pursuit

import (
	"context"

	"game-creator/planner/logging"
)

const (
	// EventPathFound is emitted when a request produced a next step.
	EventPathFound logging.EventType = "planner.path_found"
	// EventNoPath is emitted when the pursuer holds position, either because
	// it already shares the target's cell or no route exists.
	EventNoPath logging.EventType = "planner.no_path"
	// EventMissingActor is emitted when a scan finished without both actors.
	EventMissingActor logging.EventType = "planner.missing_actor"
	// EventRejected is emitted when a request failed validation.
	EventRejected logging.EventType = "planner.rejected"
)

// PathFoundPayload describes the chosen step.
type PathFoundPayload struct {
	StartRow int `json:"startRow"`
	StartCol int `json:"startCol"`
	GoalRow  int `json:"goalRow"`
	GoalCol  int `json:"goalCol"`
	PathLen  int `json:"pathLen"`
	NextX    int `json:"nextX"`
	NextY    int `json:"nextY"`
}

// NoPathPayload describes a hold outcome. Colocated distinguishes "already
// there" from "walled off".
type NoPathPayload struct {
	StartRow  int  `json:"startRow"`
	StartCol  int  `json:"startCol"`
	GoalRow   int  `json:"goalRow"`
	GoalCol   int  `json:"goalCol"`
	Colocated bool `json:"colocated"`
}

// FailurePayload carries the wire reason plus the underlying error text.
type FailurePayload struct {
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// PathFound publishes a successful planning outcome.
func PathFound(ctx context.Context, pub logging.Publisher, payload PathFoundPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPathFound,
		Actor:    logging.EntityRef{Kind: logging.EntityKindPursuer},
		Targets:  []logging.EntityRef{{Kind: logging.EntityKindTarget}},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryPlanning,
		Payload:  payload,
	})
}

// NoPath publishes a hold outcome.
func NoPath(ctx context.Context, pub logging.Publisher, payload NoPathPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventNoPath,
		Actor:    logging.EntityRef{Kind: logging.EntityKindPursuer},
		Targets:  []logging.EntityRef{{Kind: logging.EntityKindTarget}},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryPlanning,
		Payload:  payload,
	})
}

// MissingActor publishes a failed scan.
func MissingActor(ctx context.Context, pub logging.Publisher, payload FailurePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMissingActor,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityWarn,
		Category: logging.CategoryPlanning,
		Payload:  payload,
	})
}

// Rejected publishes a validation failure.
func Rejected(ctx context.Context, pub logging.Publisher, payload FailurePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRejected,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityWarn,
		Category: logging.CategoryPlanning,
		Payload:  payload,
	})
}
