package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adaptive colors keep the sidebar legible on both light and dark
// terminals; termenv resolves which variant applies.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	colorFaint  = lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	colorDone   = lipgloss.AdaptiveColor{Light: "242", Dark: "243"}
	colorSelBg  = lipgloss.AdaptiveColor{Light: "254", Dark: "236"}

	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleHeading  = lipgloss.NewStyle().Bold(true)
	styleDone     = lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true)
	styleFaint    = lipgloss.NewStyle().Foreground(colorFaint)
	styleActive   = lipgloss.NewStyle().Background(colorSelBg)
	styleSelected = lipgloss.NewStyle().Foreground(colorAccent)
	styleNotify   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

func init() {
	// Resolving the background once up front avoids per-frame terminal
	// queries from lipgloss.
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
}
