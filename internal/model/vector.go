package model

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Vector is a 3-component value in world units (X forward, Y right, Z up).
// Value type, passed by value (immutable).
type Vector struct {
	X float64
	Y float64
	Z float64
}

// NewVector creates a Vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns the vector multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul returns the component-wise product.
func (v Vector) Mul(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// WithZ returns a copy with Z replaced (immutable pattern).
func (v Vector) WithZ(z float64) Vector {
	v.Z = z
	return v
}

// IsNonNegative reports whether every component is >= 0.
func (v Vector) IsNonNegative() bool {
	return v.X >= 0 && v.Y >= 0 && v.Z >= 0
}

// Components returns the components in X, Y, Z order.
func (v Vector) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// UnmarshalYAML accepts either a sequence [x, y, z] or a mapping {x, y, z}.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xyz []float64
		if err := node.Decode(&xyz); err != nil {
			return fmt.Errorf("decoding vector: %w", err)
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: vector needs 3 components, got %d", node.Line, len(xyz))
		}
		*v = Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("decoding vector: %w", err)
		}
		*v = Vector{X: m.X, Y: m.Y, Z: m.Z}
		return nil
	default:
		return fmt.Errorf("line %d: vector must be a sequence or a mapping", node.Line)
	}
}

// MarshalYAML writes the compact flow sequence form.
func (v Vector) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v.Components() {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(c, 'g', -1, 64),
		})
	}
	return node, nil
}
