package doortype

import "github.com/udisondev/procdungeon/internal/model"

// Defaults supplies the door values used when a door has no type.
// Implemented by config.DoorDefaults.
type Defaults interface {
	DoorSize() model.Vector
	DoorOffset() float64
	DoorColor() model.Color
}

// GetSize returns the door size from dt, or the default size if dt is nil.
// d is only consulted for a nil dt.
func GetSize(dt *DoorType, d Defaults) model.Vector {
	if dt == nil {
		return d.DoorSize()
	}
	return dt.size
}

// GetOffset returns the door offset from dt, or the default offset if dt is nil.
// The value is a fraction of the room unit height; no scaling is applied.
func GetOffset(dt *DoorType, d Defaults) float64 {
	if dt == nil {
		return d.DoorOffset()
	}
	return dt.offset
}

// GetColor returns the door colour from dt, or the default colour if dt is nil.
// Debug draw only.
func GetColor(dt *DoorType, d Defaults) model.Color {
	if dt == nil {
		return d.DoorColor()
	}
	return dt.color
}
