package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the page.
type Theme struct {
	Header HeaderTheme
	Card   CardTheme
	Pet    PetTheme
}

// HeaderTheme styles the date greeting region.
type HeaderTheme struct {
	Date     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// CardTheme styles the two content cards and their inner frames.
type CardTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Label        lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Option       lipgloss.Style
	Selected     lipgloss.Style
	Note         lipgloss.Style
	Polaroid     lipgloss.Style
	Film         lipgloss.Style
	Link         lipgloss.Style
}

// PetTheme styles the pet overlay and its speech bubble.
type PetTheme struct {
	Body   lipgloss.Style
	Bubble lipgloss.Style
	Name   lipgloss.Style
}

// Default returns the built-in pastel theme. The pink accent is blended in
// Lab space so it stays soft against the cream background.
func Default() Theme {
	cream, _ := colorful.Hex("#fbf7f2")
	pink, _ := colorful.Hex("#f7a8c4")
	blush := cream.BlendLab(pink, 0.55).Hex()

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Padding(1, 2)

	return Theme{
		Header: HeaderTheme{
			Date:     muted,
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Card: CardTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color(blush)),
			Label:        muted,
			Title:        lipgloss.NewStyle().Bold(true),
			Body:         lipgloss.NewStyle(),
			Muted:        muted,
			Option:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Selected: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				BorderForeground(lipgloss.Color(blush)).
				Bold(true),
			Note: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("222")).
				Padding(1, 2),
			Polaroid: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("252")).
				Padding(1, 2),
			Film: lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 2),
			Link: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("111")).
				Padding(1, 2),
		},
		Pet: PetTheme{
			Body: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(blush)).
				Padding(0, 1),
			Bubble: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("250")).
				Padding(0, 1),
			Name: muted,
		},
	}
}
