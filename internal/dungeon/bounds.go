package dungeon

import (
	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// Box is an axis-aligned box in world units.
type Box struct {
	Min model.Vector
	Max model.Vector
}

// Center returns the box centre.
func (b Box) Center() model.Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns the full size of the box.
func (b Box) Extent() model.Vector {
	return b.Max.Add(b.Min.Scale(-1))
}

// Bounds returns the world-space box of a door.
//
// The box sits on the cell face the door points at, its base lifted by
// offset * roomUnit.Z from the cell floor. Door size X is the thickness
// across the doorway, Y the width along the wall, Z the height; for
// East/West doors X and Y are swapped.
func Bounds(door Door, roomUnit model.Vector, defaults doortype.Defaults) Box {
	size := doortype.GetSize(door.Type, defaults)
	offset := doortype.GetOffset(door.Type, defaults)

	if door.Direction == East || door.Direction == West {
		size = model.NewVector(size.Y, size.X, size.Z)
	}

	// cell centre on the floor, then pushed half a cell toward the door side
	step := door.Direction.Step().Vector().Scale(0.5)
	face := door.Cell.Vector().Add(model.NewVector(0.5, 0.5, 0)).Add(step).Mul(roomUnit)

	base := face.WithZ(face.Z + offset*roomUnit.Z)
	half := model.NewVector(size.X/2, size.Y/2, 0)

	return Box{
		Min: base.Add(half.Scale(-1)),
		Max: base.Add(half).WithZ(base.Z + size.Z),
	}
}
