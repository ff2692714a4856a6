package physics

import "errors"

var (
	// ErrShapeMismatch is returned by shape-specific mutators called on a
	// body of a different shape kind.
	ErrShapeMismatch = errors.New("physics: body has a different shape kind")

	ErrInvalidMass = errors.New("physics: mass must be finite and positive")

	// ErrDetached is returned when edge handling runs on a body that belongs
	// to no world, since there are no bounds to apply.
	ErrDetached = errors.New("physics: body is not attached to a world")

	ErrAttached = errors.New("physics: body already belongs to a world")

	// ErrDuplicateID is returned when a world already holds a body with the
	// same id, typically because the bodies came from different id sources.
	ErrDuplicateID = errors.New("physics: duplicate body id")

	ErrUnknownEdgeMode = errors.New("physics: unknown edge mode")
)
