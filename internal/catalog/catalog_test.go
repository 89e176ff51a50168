package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const woodenAsset = `
name: wooden
size: [80, 10, 220]
offset: 0
color: brown
description: Plain oak door
`

const listAsset = `
door_types:
  - name: portcullis
    size: {x: 40, y: 640, z: 400}
    offset: 0.25
    color: "#C0C0C0"
  - name: hatch
    size: [100, 100, 5]
    offset: 1
    color: {r: 10, g: 20, b: 30, a: 128}
`

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "wooden.yaml", woodenAsset)
	writeAsset(t, dir, "castle/gates.yml", listAsset)
	writeAsset(t, dir, "README.txt", "not an asset")

	c, err := LoadDir(context.Background(), dir, Options{KeepDescriptions: true})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"hatch", "portcullis", "wooden"}, c.Names())

	wooden, ok := c.Get("wooden")
	require.True(t, ok)
	assert.Equal(t, model.NewVector(80, 10, 220), wooden.Size())
	assert.Equal(t, 0.0, wooden.Offset())
	assert.Equal(t, model.Brown, wooden.Color())
	assert.Equal(t, "Plain oak door", wooden.Description())

	hatch, ok := c.Get("hatch")
	require.True(t, ok)
	assert.Equal(t, 1.0, hatch.Offset(), "upper bound returned verbatim")
	assert.Equal(t, model.NewColor(10, 20, 30, 128), hatch.Color())

	portcullis, ok := c.Get("portcullis")
	require.True(t, ok)
	assert.Equal(t, model.NewVector(40, 640, 400), portcullis.Size())
	assert.Equal(t, model.RGB(0xC0, 0xC0, 0xC0), portcullis.Color())
}

func TestLoadDir_MultiDocument(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "doors.yaml", woodenAsset+"---\n"+listAsset)

	c, err := LoadDir(context.Background(), dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestLoadDir_StripsDescriptions(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "wooden.yaml", woodenAsset)

	c, err := LoadDir(context.Background(), dir, Options{KeepDescriptions: false})
	require.NoError(t, err)

	wooden, _ := c.Get("wooden")
	assert.Empty(t, wooden.Description())
}

func TestLoadDir_IdentityIsStable(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "wooden.yaml", woodenAsset)

	c, err := LoadDir(context.Background(), dir, Options{})
	require.NoError(t, err)

	a, _ := c.Get("wooden")
	b, err := c.Resolve("wooden")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.True(t, doortype.Compatible(a, b))
	assert.Same(t, a, c.All()[0])
}

func TestLoadDir_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		opts    Options
		wantIs  error
		wantMsg string
	}{
		{
			name:   "duplicate across files",
			files:  map[string]string{"a.yaml": woodenAsset, "b.yaml": woodenAsset},
			wantIs: ErrDuplicateName,
		},
		{
			name:   "missing name",
			files:  map[string]string{"a.yaml": "size: [1, 2, 3]\n"},
			wantIs: ErrMissingName,
		},
		{
			name:    "unknown field",
			files:   map[string]string{"a.yaml": "name: x\nwidth: 3\n"},
			wantMsg: "width",
		},
		{
			name:    "mixed single and list",
			files:   map[string]string{"a.yaml": "name: x\ndoor_types:\n  - name: y\n"},
			wantMsg: "mixes",
		},
		{
			name:   "reject policy",
			files:  map[string]string{"a.yaml": "name: bad\nsize: [-1, 0, 0]\noffset: 2\n"},
			opts:   Options{Validation: doortype.PolicyReject},
			wantIs: doortype.ErrOutOfRange,
		},
		{
			name:    "bad vector",
			files:   map[string]string{"a.yaml": "name: x\nsize: [1, 2]\n"},
			wantMsg: "3 components",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeAsset(t, dir, name, content)
			}

			c, err := LoadDir(context.Background(), dir, tt.opts)
			require.Error(t, err)
			assert.Nil(t, c)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadDir_WarnAndClampPolicies(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "bad.yaml", "name: bad\nsize: [-1, 5, 5]\noffset: 1.5\ncolor: red\n")

	warned, err := LoadDir(context.Background(), dir, Options{Validation: doortype.PolicyWarn})
	require.NoError(t, err)
	bad, _ := warned.Get("bad")
	assert.Equal(t, 1.5, bad.Offset())
	assert.Equal(t, model.NewVector(-1, 5, 5), bad.Size())

	clamped, err := LoadDir(context.Background(), dir, Options{Validation: doortype.PolicyClamp})
	require.NoError(t, err)
	bad, _ = clamped.Get("bad")
	assert.Equal(t, 1.0, bad.Offset())
	assert.Equal(t, model.NewVector(0, 5, 5), bad.Size())
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDir_EmptyDir(t *testing.T) {
	c, err := LoadDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Names())
}

func TestLoadDir_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "wooden.yaml", woodenAsset)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, dir, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve(t *testing.T) {
	wooden := doortype.NewDoorType("wooden", model.NewVector(80, 10, 220), 0, model.Brown, "")
	c, err := FromDoorTypes([]*doortype.DoorType{wooden}, Options{})
	require.NoError(t, err)

	dt, err := c.Resolve("")
	require.NoError(t, err)
	assert.Nil(t, dt, "empty reference is an untyped door")

	dt, err = c.Resolve("wooden")
	require.NoError(t, err)
	assert.Same(t, wooden, dt)

	_, err = c.Resolve("iron")
	assert.ErrorIs(t, err, ErrUnknownDoorType)
}

func TestFromDoorTypes_Errors(t *testing.T) {
	a := doortype.NewDoorType("a", model.Vector{}, 0, model.White, "")

	_, err := FromDoorTypes([]*doortype.DoorType{a, a}, Options{})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = FromDoorTypes([]*doortype.DoorType{nil}, Options{})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestEncode_RoundTrip(t *testing.T) {
	types := []*doortype.DoorType{
		doortype.NewDoorType("wooden", model.NewVector(80, 10, 220), 0, model.Brown, "oak"),
		doortype.NewDoorType("hatch", model.NewVector(100, 100, 5), 1, model.Red.WithAlpha(128), ""),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, types))
	assert.Contains(t, buf.String(), "door_types:")

	dir := t.TempDir()
	writeAsset(t, dir, "export.yaml", buf.String())
	c, err := LoadDir(context.Background(), dir, Options{KeepDescriptions: true})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	for _, want := range types {
		got, ok := c.Get(want.Name())
		require.True(t, ok, want.Name())
		assert.Equal(t, want.Size(), got.Size())
		assert.Equal(t, want.Offset(), got.Offset())
		assert.Equal(t, want.Color(), got.Color())
		assert.Equal(t, want.Description(), got.Description())
	}
}
