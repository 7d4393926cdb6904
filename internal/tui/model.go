// Package tui is the interactive terminal front end. One tab reads
// specs off a band combination, the other determines the band colors
// for typed specs.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
)

type tab int

const (
	tabColorsToSpecs tab = iota
	tabSpecsToColors
)

func (t tab) toggle() tab {
	if t == tabColorsToSpecs {
		return tabSpecsToColors
	}
	return tabColorsToSpecs
}

// focusField is the specs-tab input that receives keystrokes.
type focusField int

const (
	focusResistance focusField = iota
	focusTolerance
	focusTCR
	numFields
)

func (f focusField) next() focusField { return (f + 1) % numFields }
func (f focusField) prev() focusField { return (f + numFields - 1) % numFields }

// colorsModel is the state of the "color codes to specs" tab.
type colorsModel struct {
	resistor resistor.Resistor
	selected int
}

// specsModel is the state of the "specs to color codes" tab. result
// and err are mutually exclusive outcomes of the last Determine.
type specsModel struct {
	inputs  [numFields]textinput.Model
	focus   focusField
	result  *resistor.Resistor
	err     string
	history specsHistory
}

// Model is the bubbletea model for the whole application.
type Model struct {
	tab    tab
	colors colorsModel
	specs  specsModel
	help   help.Model
}

func NewModel() Model {
	return Model{
		colors: colorsModel{resistor: preset(6)},
		specs:  newSpecsModel(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func newSpecsModel() specsModel {
	s := specsModel{history: newSpecsHistory()}
	for i := range s.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		s.inputs[i] = ti
	}
	s.inputs[focusResistance].Focus()
	return s
}

// preset is the resistor a 3|4|5|6 key resets the colors tab to.
func preset(bands int) resistor.Resistor {
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
