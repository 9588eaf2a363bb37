package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Deep space with bright reward colours.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1026") // Night Sky
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Gold   = lipgloss.Color("#FACC15") // Golden stars
	Cyan   = lipgloss.Color("#22D3EE") // Badges
	Nebula = lipgloss.Color("#E879F9") // Celebration
	Dust   = lipgloss.Color("#475569") // Background starfield
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Star map
var (
	StarStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	PlanetStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	OrbitStyle = lipgloss.NewStyle().
			Foreground(Dust)

	CelebrationStyle = lipgloss.NewStyle().
				Foreground(Nebula).
				Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressLow = lipgloss.NewStyle().
			Background(Error)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	KeyActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	KeyInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Text).
			Padding(0, 1)
)
