package world

import "maps"

// BlockSnapshot is an immutable copy of a block taken at the moment an
// operation was triggered. It records where the block stood and what it was,
// decoupled from any later changes to the world.
type BlockSnapshot struct {
	// World is the world the block was captured in. It may be nil if the
	// snapshot was produced without a world attached, in which case the
	// snapshot carries no location.
	World World
	// Pos is the block position the snapshot was taken at.
	Pos Pos
	// Name is the namespaced identifier of the block, such as
	// 'minecraft:stone'.
	Name string
	// Properties holds the block state properties at capture time.
	Properties map[string]any
}

// Location returns the location the snapshot was captured at. The second
// return value is false if the snapshot has no world attached.
func (s BlockSnapshot) Location() (Location, bool) {
	if s.World == nil {
		return Location{}, false
	}
	return Location{World: s.World, Position: s.Pos.Vec3()}, true
}

// WithProperties returns a copy of the snapshot with its properties replaced.
// The map passed is copied so that the snapshot stays immutable.
func (s BlockSnapshot) WithProperties(props map[string]any) BlockSnapshot {
	s.Properties = maps.Clone(props)
	return s
}
