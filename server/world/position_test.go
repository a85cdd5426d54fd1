package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformComponentsIndependent(t *testing.T) {
	base := Transform{Position: mgl64.Vec3{1, 2, 3}, Rotation: Rotation{90, 45}}

	moved := base.WithPosition(mgl64.Vec3{4, 5, 6})
	if moved.Rotation != base.Rotation {
		t.Fatalf("WithPosition changed the rotation: %v", moved.Rotation)
	}
	if moved.Position != (mgl64.Vec3{4, 5, 6}) {
		t.Fatalf("WithPosition did not replace the position: %v", moved.Position)
	}

	turned := base.WithRotation(Rotation{0, -30})
	if turned.Position != base.Position {
		t.Fatalf("WithRotation changed the position: %v", turned.Position)
	}
	if turned.Rotation != (Rotation{0, -30}) {
		t.Fatalf("WithRotation did not replace the rotation: %v", turned.Rotation)
	}

	// The receiver must be untouched.
	if base.Position != (mgl64.Vec3{1, 2, 3}) || base.Rotation != (Rotation{90, 45}) {
		t.Fatalf("the original transform was mutated: %v", base)
	}
}

func TestRotationVec3(t *testing.T) {
	down := Rotation{0, 90}.Vec3()
	if math.Abs(down.Y()+1) > 1e-9 {
		t.Fatalf("expected a pitch of 90 to point straight down, got %v", down)
	}
	forward := Rotation{0, 0}.Vec3()
	if math.Abs(forward.Z()-1) > 1e-9 || math.Abs(forward.Y()) > 1e-9 {
		t.Fatalf("expected a zero rotation to point towards positive Z, got %v", forward)
	}
	if math.Abs(forward.Len()-1) > 1e-9 {
		t.Fatalf("expected a unit direction vector, got length %v", forward.Len())
	}
}

func TestBlockSnapshotLocation(t *testing.T) {
	if _, ok := (BlockSnapshot{Pos: Pos{1, 2, 3}}).Location(); ok {
		t.Fatalf("expected a snapshot without a world to have no location")
	}
}
