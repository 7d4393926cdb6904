package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
)

const barWidth = 19

var (
	docStyle         = lipgloss.NewStyle().Margin(1, 2)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedBoxStyle  = boxStyle.BorderForeground(lipgloss.Color("11"))
	titleStyle       = lipgloss.NewStyle().Bold(true)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle       = lipgloss.NewStyle().Width(barWidth).Align(lipgloss.Center)
)

func (m Model) View() string {
	var body string
	var keys help.KeyMap
	if m.tab == tabColorsToSpecs {
		body = m.viewColors()
		keys = colorsKeys
	} else {
		body = m.viewSpecs()
		keys = specsKeys
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), body, m.help.View(keys)))
}

func (m Model) viewTabs() string {
	titles := [...]string{" color codes to specs ", " specs to color codes "}
	parts := make([]string, 0, len(titles))
	for i, title := range titles {
		style := inactiveTabStyle
		if tab(i) == m.tab {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "•", parts[1])
}

func (m Model) viewColors() string {
	specs := m.colors.resistor.Specs()
	strip := lipgloss.JoinHorizontal(lipgloss.Top,
		specBox(" Resistance (Ω) ", formatOhms(specs.Ohms)),
		specBox(" Tolerance (%) ", "±"+formatOhms(specs.Tolerance*100)),
		specBox(" Minimum (Ω) ", formatOhms(specs.MinOhms)),
		specBox(" Maximum (Ω) ", formatOhms(specs.MaxOhms)),
		specBox(" TCR (ppm/K) ", formatTCR(specs.TCR)),
	)

	bands := m.colors.resistor.Bands()
	cols := make([]string, len(bands))
	for i := range bands {
		cols[i] = m.bandColumn(i)
	}
	chart := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	return lipgloss.JoinVertical(lipgloss.Left, strip, chart)
}

// bandColumn renders one selectable column: all 13 colors, each
// annotated with what it would mean at this position, the current
// color marked.
func (m Model) bandColumn(position int) string {
	bands := m.colors.resistor.Bands()
	count := len(bands)
	current := bands[position]
	focused := m.colors.selected == position

	marker := " "
	if focused {
		marker = "*"
	}
	title := fmt.Sprintf(" Band %d: %s%s", position+1, resistor.BandRole(count, position), marker)

	rows := make([]string, 0, 13)
	for _, c := range resistor.Palette() {
		cursor := "   "
		if c == current {
			cursor = ">> "
		}
		label := fmt.Sprintf("%s%s %s ", cursor, resistor.BandValue(count, position, c), c)
		rows = append(rows, swatchStyle(c).Render(label))
	}

	style := boxStyle
	if focused {
		style = focusedBoxStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	))
}

func (m Model) viewSpecs() string {
	s := m.specs
	inputs := lipgloss.JoinHorizontal(lipgloss.Top,
		inputBox(" Resistance (Ω) ", s.inputs[focusResistance], s.focus == focusResistance),
		inputBox(" Tolerance (%) ", s.inputs[focusTolerance], s.focus == focusTolerance),
		inputBox(" TCR (ppm/K) ", s.inputs[focusTCR], s.focus == focusTCR),
	)

	parts := []string{inputs}
	if s.result != nil {
		parts = append(parts, bandChart(*s.result))
	}
	if s.err != "" {
		parts = append(parts, errorStyle.Render(s.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func specBox(title, value string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		valueStyle.Render(value),
	))
}

func inputBox(title string, ti textinput.Model, focused bool) string {
	style := boxStyle
	if focused {
		style = focusedBoxStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		ti.View(),
	))
}

// bandChart is the specs-tab result: one colored bar per band with the
// decoded figures in the heading.
func bandChart(r resistor.Resistor) string {
	specs := r.Specs()
	heading := fmt.Sprintf(" Resistance: %sΩ - Tolerance: ±%s%%", formatOhms(specs.Ohms), formatOhms(specs.Tolerance*100))
	if specs.TCR != nil {
		heading += fmt.Sprintf(" - TCR: %d(ppm/K)", *specs.TCR)
	}

	bands := r.Bands()
	bars := make([]string, len(bands))
	for i, c := range bands {
		bars[i] = bandBar(len(bands), i, c)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Top, bars...),
	)
}

func bandBar(count, position int, c resistor.Color) string {
	swatch := swatchStyle(c).Width(barWidth).Align(lipgloss.Center)
	stripe := swatch.Render(strings.Repeat(" ", barWidth))
	label := fmt.Sprintf("%s: %s", resistor.BandRole(count, position),
		strings.TrimSpace(resistor.BandValue(count, position, c)))

	return lipgloss.JoinVertical(lipgloss.Left,
		swatch.Render(c.String()),
		stripe,
		stripe,
		labelStyle.Render(label),
	)
}

// swatchStyle paints a cell with the band color itself. Black keeps
// the terminal foreground so the text stays visible.
func swatchStyle(c resistor.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Background(hexColor(c))
	if c != resistor.Black {
		style = style.Foreground(lipgloss.Color("#000000"))
	}
	return style
}

func hexColor(c resistor.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// formatOhms prints a spec figure the way the panels expect it: plain
// decimal notation, shortest digits, never an exponent.
func formatOhms(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTCR(tcr *uint32) string {
	if tcr == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*tcr), 10)
}
