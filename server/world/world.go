// Package world declares the world-model contracts that a host server supplies
// to the event and command layers. Nothing in this package simulates a world:
// the concrete World, Entity and Agent implementations live in the host.
package world

import (
	"github.com/google/uuid"
)

// World is a handle to a world managed by the host server. Implementations
// must be comparable so that they may be compared for identity by consumers.
type World interface {
	// Name returns the display name of the world, typically the folder name
	// it was loaded from.
	Name() string
	// Dimension returns the dimension the world represents.
	Dimension() Dimension
}

// Dimension is one of the three dimensions a world may represent.
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	End
)

// String returns the lower-case name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case End:
		return "end"
	default:
		return "overworld"
	}
}

// Locatable is implemented by values that occupy a position in a world.
type Locatable interface {
	// Location returns the current location of the value. The world of the
	// location returned is never nil.
	Location() Location
}

// Entity is a handle to an entity present in a world of the host server.
type Entity interface {
	Locatable
	// UUID returns the unique identifier of the entity. It remains stable
	// for the lifetime of the entity.
	UUID() uuid.UUID
	// Name returns the display name of the entity.
	Name() string
	// Rotation returns the current rotation of the entity.
	Rotation() Rotation
}

// Agent is an Entity steered by host-side AI. Agents expose the entity their
// goals are currently locked onto, if any.
type Agent interface {
	Entity
	// Target returns the entity the agent's AI is currently targeting. The
	// second return value is false if the agent has no target.
	Target() (Entity, bool)
}
