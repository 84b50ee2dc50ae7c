// Package style defines the lipgloss styles for swap's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	ArrowIndicator   = MutedStyle.Render("->")
)
