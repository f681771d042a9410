package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typefall/internal/core"
)

// Theme maps core color tags to lipgloss styles. The engine only ever
// tags cells; which ANSI color a tag becomes is decided here.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

var darkTheme = Theme{
	Name: "dark",
	styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		core.ColorRose:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	},
}

var lightTheme = Theme{
	Name: "light",
	styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorRose:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	},
}

// ThemeByName returns the named theme, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return darkTheme
	}
	return lightTheme
}

func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}
