package planner

import (
	"errors"
	"fmt"

	"game-creator/planner/internal/world"
)

// MalformedInputError reports a request rejected before grid construction.
type MalformedInputError struct {
	Field  string
	Detail string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("planner: malformed input: %s %s", e.Field, e.Detail)
}

// FailureReason maps an error returned by Plan onto the wire reason codes.
// Plan only produces the two taxonomy errors; anything unrecognized counts
// as malformed input, since that is the only failure class a caller could
// have caused.
func FailureReason(err error) string {
	var missing *world.MissingActorError
	if errors.As(err, &missing) {
		return ReasonMissingActor
	}
	return ReasonMalformedInput
}
