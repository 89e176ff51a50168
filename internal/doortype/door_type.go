// Package doortype defines door type assets: authored records that give a
// class of doors its bounds size, vertical offset and debug colour.
//
// A door with no type (nil *DoorType) falls back to the plugin-wide
// defaults supplied through the Defaults interface. Door types are
// compared by identity only: two doors can be connected when they point
// at the same *DoorType.
package doortype

import "github.com/udisondev/procdungeon/internal/model"

// DoorType is one authored door variant ("wooden door", "portcullis", ...).
// Immutable after construction; safe to share between goroutines.
type DoorType struct {
	name        string
	size        model.Vector // bounds size, debug draw only
	offset      float64      // fraction of the room unit Z, [0, 1]
	color       model.Color  // debug draw only
	description string       // authoring note, not read by any runtime code
}

// NewDoorType creates a door type. Values are stored verbatim; range
// checks are the loader's job (see ValidationPolicy).
func NewDoorType(name string, size model.Vector, offset float64, color model.Color, description string) *DoorType {
	return &DoorType{
		name:        name,
		size:        size,
		offset:      offset,
		color:       color,
		description: description,
	}
}

// NewFromDefaults creates a door type initialised from the plugin defaults,
// the starting point a freshly authored asset gets.
func NewFromDefaults(name string, d Defaults) *DoorType {
	return NewDoorType(name, d.DoorSize(), d.DoorOffset(), d.DoorColor(), "")
}

// Name returns the asset name (its identity within a catalog).
func (dt *DoorType) Name() string {
	return dt.name
}

// Size returns the door bounds size.
func (dt *DoorType) Size() model.Vector {
	return dt.size
}

// Offset returns the vertical offset as a fraction of the room unit height.
func (dt *DoorType) Offset() float64 {
	return dt.offset
}

// Color returns the debug draw colour.
func (dt *DoorType) Color() model.Color {
	return dt.color
}

// Description returns the authoring note. Empty when descriptions are stripped.
func (dt *DoorType) Description() string {
	return dt.description
}

// WithoutDescription returns a copy with the description dropped.
func (dt *DoorType) WithoutDescription() *DoorType {
	cp := *dt
	cp.description = ""
	return &cp
}

// Compatible reports whether doors of type a and b may be connected.
// Door types are opaque: only identity matters, never field values.
// Two untyped doors (nil, nil) share the default class and are compatible.
func Compatible(a, b *DoorType) bool {
	return a == b
}

func (dt *DoorType) String() string {
	if dt == nil {
		return "<default>"
	}
	return dt.name
}
