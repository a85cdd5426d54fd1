package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation describes the rotation of an entity as a yaw and pitch, both in
// degrees. Yaw ranges from -180 to 180 with 0 facing positive Z, pitch from
// -90 (up) to 90 (down).
type Rotation [2]float64

// Yaw returns the yaw component of the rotation.
func (r Rotation) Yaw() float64 { return r[0] }

// Pitch returns the pitch component of the rotation.
func (r Rotation) Pitch() float64 { return r[1] }

// Vec3 returns the direction unit vector the rotation points towards.
func (r Rotation) Vec3() mgl64.Vec3 {
	yaw, pitch := mgl64.DegToRad(r.Yaw()), mgl64.DegToRad(r.Pitch())
	m := math.Cos(pitch)
	return mgl64.Vec3{
		-m * math.Sin(yaw),
		-math.Sin(pitch),
		m * math.Cos(yaw),
	}
}

// Pos holds the position of a block in a world. Unlike entity positions,
// block positions are always integers.
type Pos [3]int

// X returns the X coordinate of the position.
func (p Pos) X() int { return p[0] }

// Y returns the Y coordinate of the position.
func (p Pos) Y() int { return p[1] }

// Z returns the Z coordinate of the position.
func (p Pos) Z() int { return p[2] }

// Vec3 returns a vector of the corner of the block position.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns a vector of the centre of the block position.
func (p Pos) Vec3Centre() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]) + 0.5, float64(p[1]) + 0.5, float64(p[2]) + 0.5}
}

// Location is a position within a specific world.
type Location struct {
	// World is the world the location lies in. A zero Location has a nil
	// World and is treated as absent wherever locations are resolved.
	World World
	// Position is the position within World.
	Position mgl64.Vec3
}

// Transform combines a position and a rotation. The two components may be
// replaced independently through WithPosition and WithRotation.
type Transform struct {
	Position mgl64.Vec3
	Rotation Rotation
}

// WithPosition returns a copy of the transform with its position replaced and
// its rotation untouched.
func (t Transform) WithPosition(pos mgl64.Vec3) Transform {
	t.Position = pos
	return t
}

// WithRotation returns a copy of the transform with its rotation replaced and
// its position untouched.
func (t Transform) WithRotation(rot Rotation) Transform {
	t.Rotation = rot
	return t
}
