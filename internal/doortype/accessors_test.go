package doortype

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/procdungeon/internal/model"
)

// stubDefaults counts lookups so tests can assert the defaults were (not) consulted.
type stubDefaults struct {
	size   model.Vector
	offset float64
	color  model.Color

	mu    sync.Mutex
	calls int
}

func (s *stubDefaults) hit() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *stubDefaults) DoorSize() model.Vector { s.hit(); return s.size }
func (s *stubDefaults) DoorOffset() float64 { s.hit(); return s.offset }
func (s *stubDefaults) DoorColor() model.Color { s.hit(); return s.color }

func newStubDefaults() *stubDefaults {
	return &stubDefaults{
		size:   model.NewVector(100, 0, 200),
		offset: 0.5,
		color:  model.White,
	}
}

func TestAccessors_AbsentUsesDefaults(t *testing.T) {
	d := newStubDefaults()

	assert.Equal(t, model.NewVector(100, 0, 200), GetSize(nil, d))
	assert.Equal(t, 0.5, GetOffset(nil, d))
	assert.Equal(t, model.White, GetColor(nil, d))
	assert.Equal(t, 3, d.calls)
}

func TestAccessors_PresentIgnoresDefaults(t *testing.T) {
	d := newStubDefaults()
	dt := NewDoorType("wooden", model.NewVector(80, 10, 220), 0.0, model.Brown, "")

	assert.Equal(t, model.NewVector(80, 10, 220), GetSize(dt, d))
	assert.Equal(t, 0.0, GetOffset(dt, d))
	assert.Equal(t, model.Brown, GetColor(dt, d))
	assert.Zero(t, d.calls, "defaults must not be consulted when a door type is present")
}

func TestAccessors_PresentWithNilDefaults(t *testing.T) {
	dt := NewDoorType("portcullis", model.NewVector(40, 640, 400), 0.25, model.Silver, "")

	assert.NotPanics(t, func() {
		assert.Equal(t, model.NewVector(40, 640, 400), GetSize(dt, nil))
		assert.Equal(t, 0.25, GetOffset(dt, nil))
		assert.Equal(t, model.Silver, GetColor(dt, nil))
	})
}

func TestAccessors_ReturnFieldsVerbatim(t *testing.T) {
	d := newStubDefaults()
	tests := []struct {
		name   string
		size   model.Vector
		offset float64
		color  model.Color
	}{
		{name: "zero size", size: model.Vector{}, offset: 0.3, color: model.Black},
		{name: "offset lower bound", size: model.NewVector(1, 1, 1), offset: 0, color: model.Red},
		{name: "offset upper bound", size: model.NewVector(1, 1, 1), offset: 1, color: model.Green},
		{name: "translucent colour", size: model.NewVector(5, 6, 7), offset: 0.75, color: model.Blue.WithAlpha(64)},
		// out of range values pass through unchanged; accessors never clamp
		{name: "out of range", size: model.NewVector(-5, 0, 0), offset: 1.5, color: model.Cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := NewDoorType(tt.name, tt.size, tt.offset, tt.color, "")
			assert.Equal(t, tt.size, GetSize(dt, d))
			assert.Equal(t, tt.offset, GetOffset(dt, d))
			assert.Equal(t, tt.color, GetColor(dt, d))
		})
	}
}

func TestAccessors_Idempotent(t *testing.T) {
	d := newStubDefaults()
	dt := NewDoorType("arch", model.NewVector(10, 20, 30), 0.1, model.Orange, "")

	for range 5 {
		assert.Equal(t, GetSize(dt, d), GetSize(dt, d))
		assert.Equal(t, GetOffset(nil, d), GetOffset(nil, d))
		assert.Equal(t, GetColor(nil, d), GetColor(nil, d))
		assert.Equal(t, GetColor(dt, d), GetColor(dt, d))
	}
}

func TestAccessors_ConcurrentReaders(t *testing.T) {
	d := newStubDefaults()
	dt := NewDoorType("shared", model.NewVector(1, 2, 3), 0.4, model.Purple, "")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if GetSize(dt, d) != model.NewVector(1, 2, 3) || GetOffset(nil, d) != 0.5 {
					t.Error("unexpected accessor result")
					return
				}
			}
		}()
	}
	wg.Wait()
}
