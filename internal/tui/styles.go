package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ccdash/internal/cli"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent)

	tabStyle       = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorText).
			Background(lipgloss.Color("#282726"))

	labelStyle   = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	statStyle    = lipgloss.NewStyle().Foreground(cli.ColorText)
	insightStyle = lipgloss.NewStyle().Foreground(cli.ColorBlue)
	helpStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)
