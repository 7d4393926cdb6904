package gui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
)

var (
	bodyFill = color.NRGBA{R: 214, G: 184, B: 132, A: 255}
	leadFill = color.NRGBA{R: 150, G: 154, B: 164, A: 255}
)

// drawResistor paints an axial resistor across the available area: lead
// wire, rounded body and one stripe per band. The selected band gets an
// outline in the accent color.
func drawResistor(gtx layout.Context, r resistor.Resistor, selected int, accent color.NRGBA) layout.Dimensions {
	size := gtx.Constraints.Max

	leadH := gtx.Dp(unit.Dp(6))
	midY := size.Y / 2
	paint.FillShape(gtx.Ops, leadFill,
		clip.Rect{Min: image.Pt(0, midY-leadH/2), Max: image.Pt(size.X, midY+leadH/2)}.Op())

	bodyW := size.X * 3 / 5
	bodyH := size.Y * 2 / 3
	if maxH := gtx.Dp(unit.Dp(200)); bodyH > maxH {
		bodyH = maxH
	}
	body := image.Rect((size.X-bodyW)/2, midY-bodyH/2, (size.X+bodyW)/2, midY+bodyH/2)
	paint.FillShape(gtx.Ops, bodyFill, clip.UniformRRect(body, gtx.Dp(unit.Dp(22))).Op(gtx.Ops))

	bands := r.Bands()
	stripeW := gtx.Dp(unit.Dp(20))
	gap := (bodyW - len(bands)*stripeW) / (len(bands) + 1)
	for i, c := range bands {
		x := body.Min.X + gap + i*(stripeW+gap)
		stripe := image.Rect(x, body.Min.Y, x+stripeW, body.Max.Y)
		if i == selected {
			paint.FillShape(gtx.Ops, accent, clip.Rect(stripe.Inset(-gtx.Dp(unit.Dp(3)))).Op())
		}
		paint.FillShape(gtx.Ops, stripeFill(c), clip.Rect(stripe).Op())
	}

	return layout.Dimensions{Size: size}
}

func stripeFill(c resistor.Color) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
