package event

import (
	"errors"

	"github.com/basalt-mc/basalt/server/world"
	"github.com/google/uuid"
)

var (
	// ErrNoWorld is returned when a nil world, or a location without a
	// world, is passed to a Login destination setter.
	ErrNoWorld = errors.New("event: destination world must not be nil")
)

// Login describes a client that authenticated and is about to be spawned. It
// holds the pending destination of the client: the world and transform the
// client will be placed at. Handlers may redirect the client by replacing the
// destination; the host reads the final destination after dispatch, provided
// the event was not cancelled. Cancelling the event disconnects the client.
type Login struct {
	id   uuid.UUID
	name string

	fromWorld     world.World
	fromTransform world.Transform
	toWorld       world.World
	toTransform   world.Transform
}

// NewLogin returns a Login for the client with the identity passed, about to
// be placed at the transform t in world w. It returns ErrNoWorld if w is nil.
func NewLogin(id uuid.UUID, name string, w world.World, t world.Transform) (*Login, error) {
	if w == nil {
		return nil, ErrNoWorld
	}
	return &Login{
		id: id, name: name,
		fromWorld: w, fromTransform: t,
		toWorld: w, toTransform: t,
	}, nil
}

// UUID returns the unique identifier of the connecting client.
func (ev *Login) UUID() uuid.UUID {
	return ev.id
}

// Name returns the name of the connecting client.
func (ev *Login) Name() string {
	return ev.name
}

// Origin returns the world and transform the client was originally going to
// be placed at, before any handler redirected it.
func (ev *Login) Origin() (world.World, world.Transform) {
	return ev.fromWorld, ev.fromTransform
}

// Destination returns the world and transform the client will currently be
// placed at. The pair is always internally consistent: the world returned is
// never nil.
func (ev *Login) Destination() (world.World, world.Transform) {
	return ev.toWorld, ev.toTransform
}

// SetDestination replaces both the destination world and the full transform
// at once. It returns ErrNoWorld if w is nil, in which case the destination
// is unchanged.
func (ev *Login) SetDestination(w world.World, t world.Transform) error {
	if w == nil {
		return ErrNoWorld
	}
	ev.toWorld = w
	ev.toTransform = t
	return nil
}

// SetLocation moves the destination to the location passed, replacing the
// world and position while preserving the rotation set previously. It returns
// ErrNoWorld if the location carries no world; the destination is unchanged
// in that case.
func (ev *Login) SetLocation(loc world.Location) error {
	if loc.World == nil {
		return ErrNoWorld
	}
	ev.toWorld = loc.World
	ev.toTransform = ev.toTransform.WithPosition(loc.Position)
	return nil
}

// SetRotation replaces only the rotation component of the destination
// transform, preserving the world and position.
func (ev *Login) SetRotation(rot world.Rotation) {
	ev.toTransform = ev.toTransform.WithRotation(rot)
}
