// Package debugdraw renders door type bounds into an image so designers
// can eyeball sizes, offsets and colours side by side. Nothing here feeds
// back into generation.
package debugdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

const (
	labelHeight = 20
	margin      = 8
)

// Options control the sheet layout.
type Options struct {
	PanelWidth  int // pixels per panel, including margins
	PanelHeight int // pixels per panel, excluding the label row
	Columns     int
	Background  color.Color
	FrameColor  color.Color
}

// DefaultOptions returns a 4-column layout of 192x160 panels on dark grey.
func DefaultOptions() Options {
	return Options{
		PanelWidth:  192,
		PanelHeight: 160,
		Columns:     4,
		Background:  color.RGBA{R: 32, G: 32, B: 32, A: 255},
		FrameColor:  color.RGBA{R: 96, G: 96, B: 96, A: 255},
	}
}

// Panel is the pixel layout of one door type in front elevation:
// the room unit frame and the door rectangle inside it.
type Panel struct {
	Frame image.Rectangle
	Door  image.Rectangle
	Color model.Color
	Label string
}

// Layout computes the panel for dt inside the rectangle r. The room unit
// Y x Z face is scaled uniformly to fit; the door is centred horizontally
// and its base sits at offset * unit.Z above the frame floor.
func Layout(dt *doortype.DoorType, defaults doortype.Defaults, roomUnit model.Vector, r image.Rectangle) Panel {
	size := doortype.GetSize(dt, defaults)
	offset := doortype.GetOffset(dt, defaults)

	inner := r.Inset(margin)
	scale := 1.0
	if roomUnit.Y > 0 && roomUnit.Z > 0 {
		scale = min(float64(inner.Dx())/roomUnit.Y, float64(inner.Dy())/roomUnit.Z)
	}

	frameW := int(roomUnit.Y * scale)
	frameH := int(roomUnit.Z * scale)
	frame := image.Rect(0, 0, frameW, frameH).Add(image.Pt(
		inner.Min.X+(inner.Dx()-frameW)/2,
		inner.Max.Y-frameH,
	))

	doorW := int(size.Y * scale)
	doorH := int(size.Z * scale)
	lift := int(offset * roomUnit.Z * scale)
	cx := frame.Min.X + frame.Dx()/2
	door := image.Rect(cx-doorW/2, frame.Max.Y-lift-doorH, cx-doorW/2+doorW, frame.Max.Y-lift)

	return Panel{
		Frame: frame,
		Door:  door,
		Color: doortype.GetColor(dt, defaults),
		Label: dt.String(),
	}
}

// RenderSheet draws one panel per door type. A nil entry draws the
// default door.
func RenderSheet(types []*doortype.DoorType, defaults doortype.Defaults, roomUnit model.Vector, opts Options) *image.RGBA {
	cols := max(1, min(opts.Columns, len(types)))
	rows := (len(types) + cols - 1) / cols
	cellH := opts.PanelHeight + labelHeight

	img := image.NewRGBA(image.Rect(0, 0, cols*opts.PanelWidth, max(1, rows)*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	frameSrc := image.NewUniform(opts.FrameColor)
	for i, dt := range types {
		origin := image.Pt((i%cols)*opts.PanelWidth, (i/cols)*cellH)
		area := image.Rect(0, 0, opts.PanelWidth, opts.PanelHeight).Add(origin)
		p := Layout(dt, defaults, roomUnit, area)

		drawOutlineBox(img, frameSrc, p.Frame)
		doorSrc := image.NewUniform(p.Color)
		draw.Draw(img, p.Door, image.NewUniform(p.Color.WithAlpha(p.Color.A/4)), image.Point{}, draw.Over)
		drawOutlineBox(img, doorSrc, p.Door)

		dot := fixed.P(origin.X+margin, origin.Y+opts.PanelHeight+labelHeight-6)
		drawShadowedString(img, image.White, dot, p.Label)
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func drawOutlineBox(g draw.Image, clr image.Image, r image.Rectangle) {
	if r.Empty() {
		// degenerate door (zero width or height): still show where it is
		draw.Draw(g, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, max(r.Max.Y, r.Min.Y+1)), clr, image.Point{}, draw.Over)
		return
	}
	draw.Draw(g, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), clr, image.Point{}, draw.Over)
}

func drawShadowedString(g draw.Image, clr image.Image, dot fixed.Point26_6, s string) {
	// shadow:
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			(&font.Drawer{
				Dst:  g,
				Src:  image.Black,
				Face: inconsolata.Bold8x16,
				Dot:  fixed.Point26_6{X: dot.X + fixed.I(ox), Y: dot.Y + fixed.I(oy)},
			}).DrawString(s)
		}
	}

	(&font.Drawer{
		Dst:  g,
		Src:  clr,
		Face: inconsolata.Bold8x16,
		Dot:  dot,
	}).DrawString(s)
}
