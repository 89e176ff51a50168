package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/procdungeon/internal/config"
	"github.com/udisondev/procdungeon/internal/debugdraw"
	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/testutil"
)

func TestMain(m *testing.M) {
	color.Enable = false
	os.Exit(m.Run())
}

func newTestEnv(t *testing.T, assets map[string]string) (*env, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range assets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	cfg := config.DefaultSettings()
	cfg.Assets.Dir = dir
	cfg.Door = testutil.ScenarioDefaults()

	var out bytes.Buffer
	return &env{cfg: cfg, out: &out}, &out
}

const goodAssets = `
door_types:
  - name: wooden
    size: [80, 10, 220]
    offset: 0
    color: brown
  - name: portcullis
    size: [40, 640, 400]
    offset: 0.25
    color: silver
`

func TestRunList(t *testing.T) {
	e, out := newTestEnv(t, map[string]string{"doors.yaml": goodAssets})

	require.NoError(t, runList(context.Background(), e, nil))

	text := out.String()
	assert.Contains(t, text, "<default>")
	assert.Contains(t, text, "(100, 0, 200)")
	assert.Contains(t, text, "#FFFFFF")
	assert.Contains(t, text, "wooden")
	assert.Contains(t, text, "(80, 10, 220)")
	assert.Contains(t, text, "#8B4513")
	assert.Contains(t, text, "portcullis")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("portcullis")), bytes.Index(out.Bytes(), []byte("wooden")), "sorted by name")
}

func TestRunList_AssetsFlag(t *testing.T) {
	e, out := newTestEnv(t, nil)
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "gate.yaml"), []byte("name: gate\nsize: [1, 2, 3]\n"), 0o644))

	require.NoError(t, runList(context.Background(), e, []string{"-assets", other}))
	assert.Contains(t, out.String(), "gate")
}

func TestRunValidate(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		e, out := newTestEnv(t, map[string]string{"doors.yaml": goodAssets})
		require.NoError(t, runValidate(context.Background(), e, nil))
		assert.Contains(t, out.String(), "ok: 2 door types")
	})

	t.Run("reports every bad asset", func(t *testing.T) {
		e, out := newTestEnv(t, map[string]string{
			"doors.yaml": goodAssets,
			"bad1.yaml":  "name: sunken\nsize: [1, 1, 1]\noffset: -0.5\n",
			"bad2.yaml":  "name: inverted\nsize: [1, -1, 1]\noffset: 2\n",
		})

		err := runValidate(context.Background(), e, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, doortype.ErrOutOfRange)
		assert.Contains(t, err.Error(), "2 of 4")

		text := out.String()
		assert.Contains(t, text, `"sunken": offset`)
		assert.Contains(t, text, `"inverted": size.y`)
		assert.Contains(t, text, `"inverted": offset`)
	})
}

func TestRunPreview(t *testing.T) {
	e, _ := newTestEnv(t, map[string]string{"doors.yaml": goodAssets})
	outPath := filepath.Join(t.TempDir(), "sheet.png")

	require.NoError(t, runPreview(context.Background(), e, []string{"-o", outPath, "-cols", "3"}))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// default + 2 assets in one row of 3 panels
	opts := debugdraw.DefaultOptions()
	assert.Equal(t, 3*opts.PanelWidth, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), opts.PanelHeight)
	assert.Less(t, img.Bounds().Dy(), 2*opts.PanelHeight)
}

func TestExportTypes(t *testing.T) {
	e, out := newTestEnv(t, nil)

	require.NoError(t, exportTypes(e, []*doortype.DoorType{testutil.WoodenDoor(), testutil.Portcullis()}))
	text := out.String()
	assert.Contains(t, text, "door_types:")
	assert.Contains(t, text, "name: wooden")
	assert.Contains(t, text, "Plain oak door")

	out.Reset()
	assert.Error(t, exportTypes(e, nil))
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)
	for _, name := range []string{"list", "validate", "preview", "import", "export"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("bogus").String())
}
