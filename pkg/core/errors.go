package core

import "errors"

// Error kinds shared by every stage of the generator. Callers match them with
// errors.Is; stages wrap them with the failing operation and values.
var (
	// ErrInvalidDimension reports a non-positive grid size or a field too
	// small to hold a single unit cell.
	ErrInvalidDimension = errors.New("cavegen: invalid dimension")
	// ErrInvalidParameter reports a generation parameter outside its
	// documented range.
	ErrInvalidParameter = errors.New("cavegen: invalid parameter")
	// ErrOutOfBounds reports grid access outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("cavegen: coordinate out of bounds")
)
