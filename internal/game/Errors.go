package game

import "errors"

var ErrCollision = errors.New("snake collided with something")

type CollisionKind int

const (
	BoundaryViolation CollisionKind = iota
	SelfCollision
)

func (k CollisionKind) String() string {
	if k == SelfCollision {
		return "self"
	}
	return "boundary"
}

// CollisionError ends a game. Both kinds print the same message; Kind is for logs only.
type CollisionError struct {
	Kind CollisionKind
	Head Position
	Tick int
}

func (e *CollisionError) Error() string {
	return ErrCollision.Error()
}

func (e *CollisionError) Unwrap() error {
	return ErrCollision
}
