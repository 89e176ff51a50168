package doortype

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every RangeError.
var ErrOutOfRange = errors.New("value out of range")

// FieldConstraint is the declared range of one authored field, the same
// hint an editing tool uses to clamp its input widgets.
type FieldConstraint struct {
	Field  string
	Min    float64
	Max    float64
	HasMax bool
}

// Contains reports whether v lies within the constraint (bounds inclusive).
func (c FieldConstraint) Contains(v float64) bool {
	if math.IsNaN(v) || v < c.Min {
		return false
	}
	return !c.HasMax || v <= c.Max
}

// Clamp pulls v into the constraint range. NaN maps to Min.
func (c FieldConstraint) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < c.Min {
		return c.Min
	}
	if c.HasMax && v > c.Max {
		return c.Max
	}
	return v
}

func (c FieldConstraint) String() string {
	if c.HasMax {
		return fmt.Sprintf("[%g, %g]", c.Min, c.Max)
	}
	return fmt.Sprintf(">= %g", c.Min)
}

// Field constraints of a door type.
var (
	SizeXConstraint  = FieldConstraint{Field: "size.x", Min: 0}
	SizeYConstraint  = FieldConstraint{Field: "size.y", Min: 0}
	SizeZConstraint  = FieldConstraint{Field: "size.z", Min: 0}
	OffsetConstraint = FieldConstraint{Field: "offset", Min: 0, Max: 1, HasMax: true}
)

// Constraints lists every constrained field, in declaration order.
var Constraints = []FieldConstraint{
	SizeXConstraint,
	SizeYConstraint,
	SizeZConstraint,
	OffsetConstraint,
}

// RangeError describes one field of one door type outside its declared range.
type RangeError struct {
	DoorType   string
	Constraint FieldConstraint
	Value      float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("door type %q: %s = %g, want %s", e.DoorType, e.Constraint.Field, e.Value, e.Constraint)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func (dt *DoorType) constrainedValues() [4]float64 {
	return [4]float64{dt.size.X, dt.size.Y, dt.size.Z, dt.offset}
}

// Validate checks dt against Constraints. All violations are reported,
// joined with errors.Join; each one is a *RangeError.
func Validate(dt *DoorType) error {
	if dt == nil {
		return nil
	}
	var errs []error
	for i, v := range dt.constrainedValues() {
		c := Constraints[i]
		if !c.Contains(v) {
			errs = append(errs, &RangeError{DoorType: dt.name, Constraint: c, Value: v})
		}
	}
	return errors.Join(errs...)
}

// Clamp returns a copy of dt with every constrained field pulled into range.
// dt itself is never modified. Returns dt unchanged when nothing needs clamping.
func Clamp(dt *DoorType) *DoorType {
	if dt == nil || Validate(dt) == nil {
		return dt
	}
	cp := *dt
	cp.size.X = SizeXConstraint.Clamp(cp.size.X)
	cp.size.Y = SizeYConstraint.Clamp(cp.size.Y)
	cp.size.Z = SizeZConstraint.Clamp(cp.size.Z)
	cp.offset = OffsetConstraint.Clamp(cp.offset)
	return &cp
}
