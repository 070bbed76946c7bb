// Package ui runs the overlay's event loop as a bubbletea program and renders
// the operator status panel.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#C7850A", Dark: "#F5C04A"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Warning  lipgloss.Style
	Counter  lipgloss.Style
	Panel    lipgloss.Style
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: lipgloss.NewStyle().
			Width(10).
			Foreground(defaultColors.Subtle),

		Value: lipgloss.NewStyle(),

		Active: lipgloss.NewStyle().
			Foreground(defaultColors.Special),

		Inactive: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Warning: lipgloss.NewStyle().
			Foreground(defaultColors.Warning),

		Counter: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Help: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Subtle).
			Foreground(defaultColors.Subtle),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		HelpDesc: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
