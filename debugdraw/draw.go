// Package debugdraw renders the state of a physics.World for debugging.
package debugdraw

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/rigid/color"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
)

// Palette defines the colors used for drawing.
type Palette struct {
	Static   color.Color
	Awake    color.Color
	Fast     color.Color
	Sleeping color.Color
	Outline  color.Color
	Contact  color.Color
}

var DefaultPalette = Palette{
	Static:   color.Gray(0.5),
	Awake:    color.RGB(0, 1, 0),
	Fast:     color.RGB(1, 0.75, 0),
	Sleeping: color.RGB(0.25, 0.25, 1),
	Outline:  color.White,
	Contact:  color.RGB(1, 0, 0),
}

type Options struct {
	// Transform maps world coordinates to screen coordinates.
	Transform gm.Affine

	Palette Palette

	// FastSpeed is the speed at which a body is drawn in Palette.Fast.
	FastSpeed float64

	Contacts bool
	Stats    bool
}

// Draw draws all bodies of the world onto the target image. Each body
// is drawn as the unit circle used by physics.CheckCollision, with a line
// from its center showing its rotation.
func Draw(target *ebiten.Image, world *physics.World, opts Options) {
	d := drawer{Image: target, Transform: opts.Transform}

	for _, body := range world.Bodies() {
		fill := bodyColor(body, opts)
		d.DrawBody(body, fill.WithAlpha(0.5), opts.Palette.Outline)
	}

	if opts.Contacts {
		for _, contact := range world.Contacts() {
			d.DrawContact(contact.Info, opts.Palette.Contact)
		}
	}

	if opts.Stats {
		drawStats(target, world)
	}
}

func bodyColor(body *physics.Body, opts Options) color.Color {
	switch {
	case body.IsStatic():
		return opts.Palette.Static

	case body.IsSleeping():
		return opts.Palette.Sleeping

	default:
		fastSpeed := opts.FastSpeed
		if fastSpeed <= 0 {
			fastSpeed = 10
		}

		weight := body.Velocity().Length() / fastSpeed
		return opts.Palette.Awake.Mix(opts.Palette.Fast, float32(weight))
	}
}

type drawer struct {
	Image     *ebiten.Image
	Transform gm.Affine
}

func (d drawer) draw(p vector.Path, outline color.Color, fill color.Color) {
	dpo := &vector.DrawPathOptions{}
	dpo.AntiAlias = true

	dpo.ColorScale.Scale(fill.PremultipliedValues())
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.AntiAlias = true

	dpo.ColorScale.Scale(outline.PremultipliedValues())
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d drawer) DrawBody(body *physics.Body, fill, outline color.Color) {
	local := body.Transform()

	center := d.Transform.Transform(body.Position())
	edge := d.Transform.Transform(local.Transform(gm.Vec{X: 1}))
	radius := center.DistanceTo(edge)

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.Close()
	d.draw(p, outline, fill)

	var marker vector.Path
	marker.MoveTo(float32(center.X), float32(center.Y))
	marker.LineTo(float32(edge.X), float32(edge.Y))
	d.draw(marker, outline, color.Transparent)
}

func (d drawer) DrawContact(contact physics.ContactInfo, fill color.Color) {
	point := d.Transform.Transform(contact.Point)
	tip := d.Transform.Transform(contact.Point.Add(contact.Normal.Mul(0.5)))

	var dot vector.Path
	dot.Arc(float32(point.X), float32(point.Y), 3, 0, math.Pi*2, vector.Clockwise)
	dot.Close()
	d.draw(dot, fill, fill)

	var normal vector.Path
	normal.MoveTo(float32(point.X), float32(point.Y))
	normal.LineTo(float32(tip.X), float32(tip.Y))
	d.draw(normal, fill, color.Transparent)
}

func drawStats(target *ebiten.Image, world *physics.World) {
	stats := world.Stats()

	lines := []string{
		fmt.Sprintf("bodies=%d, pairs=%d, contacts=%d", world.Len(), stats.PairsTested, stats.ContactsFound),
		formatTimings("step", stats.Step),
	}

	for _, stage := range physics.Stages {
		lines = append(lines, formatTimings(stage.String(), stats.Stage(stage)))
	}

	for row, line := range lines {
		ebitenutil.DebugPrintAt(target, line, 16, 16+16*row)
	}
}

func formatTimings(name string, t physics.Timings) string {
	return fmt.Sprintf("%-10s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
		name,
		t.Count,
		t.Latest.Seconds()*1000,
		t.Min.Seconds()*1000,
		t.Max.Seconds()*1000,
		t.MovingAverage.Seconds()*1000,
	)
}
