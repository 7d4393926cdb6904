package tui

import "github.com/charmbracelet/bubbles/key"

// One key map per tab, both implementing help.KeyMap so the bottom
// help line always describes the active screen.

var toggleTabBinding = key.NewBinding(
	key.WithKeys("shift+left", "shift+right"),
	key.WithHelp("Shift ←/→", "prev/next tab"),
)

var quitBinding = key.NewBinding(
	key.WithKeys("esc", "ctrl+c"),
	key.WithHelp("Esc", "exit"),
)

type colorsKeyMap struct {
	NextBand  key.Binding
	PrevBand  key.Binding
	PrevColor key.Binding
	NextColor key.Binding
	BandCount key.Binding
	ToggleTab key.Binding
	Quit      key.Binding
}

func (k colorsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBand, k.PrevColor, k.NextColor, k.BandCount, k.ToggleTab, k.Quit}
}

func (k colorsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextBand, k.PrevBand, k.PrevColor, k.NextColor},
		{k.BandCount, k.ToggleTab, k.Quit},
	}
}

var colorsKeys = colorsKeyMap{
	NextBand: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next band"),
	),
	PrevBand: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "prev band"),
	),
	PrevColor: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "prev color"),
	),
	NextColor: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next color"),
	),
	BandCount: key.NewBinding(
		key.WithKeys("3", "4", "5", "6"),
		key.WithHelp("3|4|5|6", "bands count"),
	),
	ToggleTab: toggleTabBinding,
	Quit:      quitBinding,
}

type specsKeyMap struct {
	NextInput   key.Binding
	PrevInput   key.Binding
	Determine   key.Binding
	PrevHistory key.Binding
	NextHistory key.Binding
	Reset       key.Binding
	ToggleTab   key.Binding
	Quit        key.Binding
}

func (k specsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextInput, k.Determine, k.PrevHistory, k.Reset, k.ToggleTab, k.Quit}
}

func (k specsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextInput, k.PrevInput, k.Determine, k.Reset},
		{k.PrevHistory, k.NextHistory, k.ToggleTab, k.Quit},
	}
}

var specsKeys = specsKeyMap{
	NextInput: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next input"),
	),
	PrevInput: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "prev input"),
	),
	Determine: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "calculate color codes"),
	),
	PrevHistory: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "history"),
	),
	NextHistory: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next history"),
	),
	Reset: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "reset"),
	),
	ToggleTab: toggleTabBinding,
	Quit:      quitBinding,
}
