package gui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
)

// App drives the GioView-based band editor.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme

	resistor resistor.Resistor
	selected int

	colorMenu    *menu.DropdownMenu
	colorMenuBtn widget.Clickable
	paletteIcon  *widget.Icon
}

func newApp(w *app.Window) *App {
	gv := theme.NewTheme("", nil, true)
	gv.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
		Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
		ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
		Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
	})

	a := &App{
		window:   w,
		gvTheme:  gv,
		resistor: defaultResistor(6),
	}
	if icon, err := widget.NewIcon(icons.ImageColorLens); err == nil {
		a.paletteIcon = icon
	}
	a.colorMenu = a.buildColorMenu()
	return a
}

// defaultResistor builds the starting code for a layout: the lowest
// decade value with a 1% tolerance where the layout has a tolerance band.
func defaultResistor(bands int) resistor.Resistor {
	var colors []resistor.Color
	switch bands {
	case 3:
		colors = []resistor.Color{resistor.Brown, resistor.Black, resistor.Black}
	case 4:
		colors = []resistor.Color{resistor.Brown, resistor.Black, resistor.Black, resistor.Brown}
	case 5:
		colors = []resistor.Color{resistor.Brown, resistor.Black, resistor.Black, resistor.Black, resistor.Brown}
	default:
		colors = []resistor.Color{resistor.Brown, resistor.Black, resistor.Black, resistor.Black, resistor.Brown, resistor.Black}
	}
	r, err := resistor.New(colors)
	if err != nil {
		panic(err)
	}
	return r
}

// run processes Gio events until the window is closed.
func (a *App) run() error {
	for {
		switch ev := a.window.Event().(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			if a.handleKeys(gtx) {
				return nil
			}
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// handleKeys drains pending key events. It reports true when the user
// asked to close the window.
func (a *App) handleKeys(gtx layout.Context) bool {
	for {
		ev, ok := gtx.Event(key.Filter{})
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case key.NameEscape, "Q":
			return true
		case key.NameTab, key.NameRightArrow:
			a.selectBand(1)
		case key.NameLeftArrow:
			a.selectBand(-1)
		case key.NameUpArrow:
			a.stepColor(-1)
		case key.NameDownArrow:
			a.stepColor(1)
		case "3", "4", "5", "6":
			a.setBandCount(int(ke.Name[0] - '0'))
		}
		a.invalidate()
	}
	return false
}

func (a *App) selectBand(dir int) {
	n := a.resistor.BandCount()
	a.selected = ((a.selected+dir)%n + n) % n
	a.colorMenu = a.buildColorMenu()
}

// stepColor moves the selected band to the nearest color in the given
// direction that keeps the code valid. The current color terminates the
// scan, so the loop is bounded even on a band with no alternatives.
func (a *App) stepColor(dir int) {
	idx := int(a.resistor.Bands()[a.selected])
	for step := 1; step <= 13; step++ {
		next := resistor.Color(((idx+dir*step)%13 + 13) % 13)
		if r, err := a.resistor.WithColor(next, a.selected); err == nil {
			a.resistor = r
			break
		}
	}
	a.colorMenu = a.buildColorMenu()
}

func (a *App) setBandCount(bands int) {
	if bands == a.resistor.BandCount() {
		return
	}
	a.resistor = defaultResistor(bands)
	if a.selected >= bands {
		a.selected = bands - 1
	}
	a.colorMenu = a.buildColorMenu()
}

func (a *App) applyColor(c resistor.Color) {
	if r, err := a.resistor.WithColor(c, a.selected); err == nil {
		a.resistor = r
	}
	a.colorMenu = a.buildColorMenu()
	a.invalidate()
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// buildColorMenu lists the colors the selected band may take. It is
// rebuilt whenever the selection or the band count changes.
func (a *App) buildColorMenu() *menu.DropdownMenu {
	count := a.resistor.BandCount()
	current := a.resistor.Bands()[a.selected]
	choices := resistor.ValidColors(count, a.selected)
	opts := make([]menu.MenuOption, 0, len(choices))
	for _, c := range choices {
		choice := c
		label := colorLabel(count, a.selected, choice)
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.applyColor(choice)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, label)
				if choice == current {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(240)
	return drop
}

func colorLabel(count, position int, c resistor.Color) string {
	value := strings.TrimSpace(resistor.BandValue(count, position, c))
	if value == "" {
		return c.String()
	}
	return fmt.Sprintf("%s  %s", c, value)
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(a.layoutHeader),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, a.layoutBody),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(a.layoutFooter),
		)
	})
}

func (a *App) layoutHeader(gtx layout.Context) layout.Dimensions {
	th := a.gvTheme
	count := a.resistor.BandCount()
	bandLine := fmt.Sprintf("Band %d of %d: %s (%s)",
		a.selected+1, count, resistor.BandRole(count, a.selected), a.resistor.Bands()[a.selected])
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.H6(th.Theme, "Resistor color codes").Layout),
		layout.Rigid(material.Caption(th.Theme, bandLine).Layout),
		layout.Rigid(material.Caption(th.Theme,
			"Tab or arrows select a band, up/down change its color, 3-6 set the band count, Esc or Q quits").Layout),
	)
}

func (a *App) layoutBody(gtx layout.Context) layout.Dimensions {
	return drawResistor(gtx, a.resistor, a.selected, a.gvTheme.Palette.ContrastBg)
}

func (a *App) layoutFooter(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, a.layoutSpecs),
		layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
		layout.Rigid(a.layoutColorPicker),
	)
}

func (a *App) layoutSpecs(gtx layout.Context) layout.Dimensions {
	th := a.gvTheme
	specs := a.resistor.Specs()
	lines := []string{
		fmt.Sprintf("Resistance: %sΩ", rkm.Format(specs.Ohms)),
		fmt.Sprintf("Tolerance: ±%s%%", formatPercent(specs.Tolerance*100)),
		fmt.Sprintf("Range: %sΩ to %sΩ", rkm.Format(specs.MinOhms), rkm.Format(specs.MaxOhms)),
	}
	if specs.TCR != nil {
		lines = append(lines, fmt.Sprintf("TCR: %d ppm/K", *specs.TCR))
	}
	children := make([]layout.FlexChild, 0, len(lines))
	for _, line := range lines {
		txt := line
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Body1(th.Theme, txt).Layout(gtx)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (a *App) layoutColorPicker(gtx layout.Context) layout.Dimensions {
	th := a.gvTheme
	count := a.resistor.BandCount()
	current := a.resistor.Bands()[a.selected]
	caption := fmt.Sprintf("Band %d: %s", a.selected+1, resistor.BandRole(count, a.selected))
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if a.paletteIcon == nil {
				return layout.Dimensions{}
			}
			iconSize := gtx.Dp(unit.Dp(20))
			gtx.Constraints.Min = image.Pt(iconSize, iconSize)
			gtx.Constraints.Max = gtx.Constraints.Min
			return a.paletteIcon.Layout(gtx, th.Palette.Fg)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body2(th.Theme, current.String()).Layout),
				layout.Rigid(material.Caption(th.Theme, caption).Layout),
			)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if a.colorMenu != nil && a.colorMenuBtn.Clicked(gtx) {
				a.colorMenu.ToggleVisibility(gtx)
			}
			dims := material.Button(th.Theme, &a.colorMenuBtn, "Change").Layout(gtx)
			if a.colorMenu != nil {
				a.colorMenu.Layout(gtx, th)
			}
			return dims
		}),
	)
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
