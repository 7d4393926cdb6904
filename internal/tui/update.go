package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		w := msg.Width/3 - 6
		if w < 16 {
			w = 16
		}
		for i := range m.specs.inputs {
			m.specs.inputs[i].Width = w
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitBinding):
		return m, tea.Quit
	case key.Matches(msg, toggleTabBinding):
		m.tab = m.tab.toggle()
		return m, nil
	}
	if m.tab == tabColorsToSpecs {
		return m.handleColorsKey(msg)
	}
	return m.handleSpecsKey(msg)
}

func (m Model) handleColorsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.colors
	switch {
	case key.Matches(msg, colorsKeys.BandCount):
		c.setBandCount(int(msg.String()[0] - '0'))
	case key.Matches(msg, colorsKeys.NextBand):
		c.selected = (c.selected + 1) % c.resistor.BandCount()
	case key.Matches(msg, colorsKeys.PrevBand):
		n := c.resistor.BandCount()
		c.selected = (c.selected + n - 1) % n
	case key.Matches(msg, colorsKeys.NextColor):
		c.stepColor(1)
	case key.Matches(msg, colorsKeys.PrevColor):
		c.stepColor(-1)
	}
	return m, nil
}

func (m Model) handleSpecsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.specs
	switch {
	case key.Matches(msg, specsKeys.Determine):
		s.determine()
	case key.Matches(msg, specsKeys.NextInput):
		return m, s.moveFocus(true)
	case key.Matches(msg, specsKeys.PrevInput):
		return m, s.moveFocus(false)
	case key.Matches(msg, specsKeys.PrevHistory):
		s.history.prev()
		s.setFromHistory()
	case key.Matches(msg, specsKeys.NextHistory):
		s.history.next()
		s.setFromHistory()
	case key.Matches(msg, specsKeys.Reset):
		*s = newSpecsModel()
	default:
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (c *colorsModel) setBandCount(n int) {
	c.resistor = preset(n)
	if max := c.resistor.BandCount() - 1; c.selected > max {
		c.selected = max
	}
}

// stepColor moves the selected band to the nearest color the band
// layout accepts in the given direction, wrapping around the 13-color
// code order. The current color terminates the scan, so the loop is
// bounded even on a band with no alternatives.
func (c *colorsModel) stepColor(dir int) {
	idx := int(c.resistor.Bands()[c.selected])
	for step := 1; step <= 13; step++ {
		next := resistor.Color(((idx+dir*step)%13 + 13) % 13)
		r, err := c.resistor.WithColor(next, c.selected)
		if err == nil {
			c.resistor = r
			return
		}
	}
}

// determine runs the codec over the three inputs and records either
// the resistor or the failure. Successful inputs are snapshotted to
// history as typed.
func (s *specsModel) determine() {
	resistance := s.inputs[focusResistance].Value()
	tolerance := s.inputs[focusTolerance].Value()
	tcr := s.inputs[focusTCR].Value()

	r, err := determineFromInputs(resistance, tolerance, tcr)
	if err != nil {
		s.result = nil
		s.err = err.Error()
		return
	}
	s.result = &r
	s.err = ""
	s.history.add([3]string{resistance, tolerance, tcr})
	s.history.clearCursor()
}

// moveFocus validates the focused input and only moves on when it
// parses. Empty counts as valid so tolerance and tcr stay optional.
func (s *specsModel) moveFocus(forward bool) tea.Cmd {
	if err := s.validateFocused(); err != nil {
		s.err = err.Error()
		s.result = nil
		return nil
	}
	s.err = ""
	s.inputs[s.focus].Blur()
	if forward {
		s.focus = s.focus.next()
	} else {
		s.focus = s.focus.prev()
	}
	return s.inputs[s.focus].Focus()
}

func (s *specsModel) validateFocused() error {
	value := s.inputs[s.focus].Value()
	if strings.TrimSpace(value) == "" {
		return nil
	}
	switch s.focus {
	case focusTolerance:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid input for tolerance: %v", err)
		}
	case focusTCR:
		if _, err := strconv.ParseUint(value, 10, 32); err != nil {
			return fmt.Errorf("invalid input for tcr: %v", err)
		}
	default:
		_, err := parseResistance(value)
		return err
	}
	return nil
}

func (s *specsModel) setFromHistory() {
	entry, ok := s.history.current()
	if !ok {
		return
	}
	for i, value := range entry {
		s.inputs[i].SetValue(value)
		s.inputs[i].CursorEnd()
	}
}

// parseResistance accepts what the resistance field accepts: a plain
// float, or an RKM code / suffixed magnitude like "4k7" and "4.7k".
func parseResistance(value string) (float64, error) {
	ohms, floatErr := strconv.ParseFloat(value, 64)
	if floatErr == nil {
		return ohms, nil
	}
	if ohms, err := rkm.Parse(value); err == nil {
		return ohms, nil
	}
	return 0, fmt.Errorf("invalid input for resistance: %v", floatErr)
}

// determineFromInputs maps the three raw strings onto a Determine
// call. Tolerance and tcr are optional; all parse failures are
// reported together, one per line.
func determineFromInputs(resistance, tolerance, tcr string) (resistor.Resistor, error) {
	var errs []error

	ohms, err := parseResistance(resistance)
	if err != nil {
		errs = append(errs, err)
	}

	var tolerancePercent *float64
	if tolerance != "" {
		t, err := strconv.ParseFloat(tolerance, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid input for tolerance: %v", err))
		} else {
			tolerancePercent = &t
		}
	}

	var tcrPPM *uint32
	if tcr != "" {
		t, err := strconv.ParseUint(tcr, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid input for tcr: %v", err))
		} else {
			v := uint32(t)
			tcrPPM = &v
		}
	}

	if len(errs) > 0 {
		return resistor.Resistor{}, errors.Join(errs...)
	}

	r, err := resistor.Determine(ohms, tolerancePercent, tcrPPM)
	if err != nil {
		return resistor.Resistor{}, fmt.Errorf("could not determine a resistor for these inputs: %v", err)
	}
	return r, nil
}
