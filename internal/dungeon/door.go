package dungeon

import (
	"fmt"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// Direction is the side of a room cell a door sits on.
// North is +X, East is +Y (room-local axes).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the facing direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Step returns the unit cell offset in this direction.
func (d Direction) Step() Cell {
	switch d {
	case North:
		return Cell{X: 1}
	case East:
		return Cell{Y: 1}
	case South:
		return Cell{X: -1}
	default:
		return Cell{Y: -1}
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Cell is an integer position in room units.
type Cell struct {
	X, Y, Z int32
}

// Add returns the component-wise sum.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Vector converts the cell to a float vector (still in room units).
func (c Cell) Vector() model.Vector {
	return model.NewVector(float64(c.X), float64(c.Y), float64(c.Z))
}

// Door is a doorway on one side of a room cell.
// Type nil means the door uses the plugin defaults.
type Door struct {
	Cell      Cell
	Direction Direction
	Type      *doortype.DoorType
}

// Facing returns the cell on the other side of the door.
func (d Door) Facing() Cell {
	return d.Cell.Add(d.Direction.Step())
}

// CanConnect reports whether two doors can be joined into one doorway:
// same door type asset, opposite directions, and back to back.
func CanConnect(a, b Door) bool {
	if !doortype.Compatible(a.Type, b.Type) {
		return false
	}
	if a.Direction.Opposite() != b.Direction {
		return false
	}
	return a.Facing() == b.Cell && b.Facing() == a.Cell
}

func (d Door) String() string {
	return fmt.Sprintf("door %v %s [%s]", d.Cell, d.Direction, d.Type)
}
