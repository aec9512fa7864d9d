// Package tui renders the dashboard aggregates as an interactive terminal app.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ccdash/internal/cli"
	"github.com/theirongolddev/ccdash/internal/model"
)

var tabNames = []string{"Overview", "Projects", "Tools"}

// App is the bubbletea model for the dashboard TUI. The dashboard is computed
// once before the program starts; the TUI itself never touches the filesystem.
type App struct {
	dash   model.Dashboard
	active int
	width  int

	projects table.Model
	tools    table.Model
}

// New builds the app from an already-shaped dashboard.
func New(d model.Dashboard) App {
	return App{
		dash:     d,
		projects: newProjectsTable(d.Projects),
		tools:    newToolsTable(d.ToolUsage),
	}
}

// Run starts the TUI program in the alternate screen.
func Run(d model.Dashboard) error {
	_, err := tea.NewProgram(New(d), tea.WithAltScreen()).Run()
	return err
}

func newProjectsTable(projects []model.ProjectStats) table.Model {
	rows := make([]table.Row, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, table.Row{
			cli.Truncate(p.Name, 24),
			cli.FormatNumber(int64(p.Sessions)),
			cli.FormatNumber(int64(p.Messages)),
			cli.FormatNumber(int64(p.ToolCalls)),
		})
	}
	return newTable([]table.Column{
		{Title: "Project", Width: 24},
		{Title: "Sessions", Width: 10},
		{Title: "Messages", Width: 10},
		{Title: "Tool calls", Width: 10},
	}, rows)
}

func newToolsTable(tools []model.NameCount) table.Model {
	rows := make([]table.Row, 0, len(tools))
	for _, t := range tools {
		rows = append(rows, table.Row{
			cli.Truncate(t.Name, 32),
			cli.FormatNumber(int64(t.Count)),
		})
	}
	return newTable([]table.Column{
		{Title: "Tool", Width: 32},
		{Title: "Calls", Width: 10},
	}, rows)
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(14),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(cli.ColorAccent)
	st.Selected = st.Selected.Foreground(cli.ColorText).Background(lipgloss.Color("#282726"))
	t.SetStyles(st)
	return t
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "tab", "l", "right":
			a.active = (a.active + 1) % len(tabNames)
			return a, nil
		case "shift+tab", "h", "left":
			a.active = (a.active + len(tabNames) - 1) % len(tabNames)
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case 1:
		a.projects, cmd = a.projects.Update(msg)
	case 2:
		a.tools, cmd = a.tools.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("  ccdash") + "\n\n")
	b.WriteString(a.renderTabs() + "\n\n")

	switch a.active {
	case 0:
		b.WriteString(a.renderOverview())
	case 1:
		b.WriteString(a.projects.View() + "\n")
	case 2:
		b.WriteString(a.tools.View() + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("  tab: switch  ↑/↓: scroll  q: quit") + "\n")
	return b.String()
}

func (a App) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.active {
			parts = append(parts, activeTabStyle.Render(" "+name+" "))
		} else {
			parts = append(parts, tabStyle.Render(" "+name+" "))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (a App) renderOverview() string {
	s := a.dash.Summary

	var b strings.Builder
	stat := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", label)),
			statStyle.Render(value)))
	}

	stat("Sessions", cli.FormatNumber(int64(s.TotalSessions)))
	stat("Messages", cli.FormatNumber(int64(s.TotalMessages)))
	stat("Tool calls", cli.FormatNumber(int64(s.TotalToolCalls)))
	stat("Projects", cli.FormatNumber(int64(s.TotalProjects)))
	stat("Active days", cli.FormatNumber(int64(s.ActiveDays)))
	stat("Est. cost", cli.FormatCost(s.EstimatedCost))

	hours := make([]float64, len(a.dash.HourlyActivity))
	for i, n := range a.dash.HourlyActivity {
		hours[i] = float64(n)
	}
	b.WriteString("\n  " + labelStyle.Render("Hourly") + "   " + cli.RenderSparkline(hours) + "\n")

	days := make([]float64, len(a.dash.WeekdayActivity))
	for i, n := range a.dash.WeekdayActivity {
		days[i] = float64(n)
	}
	b.WriteString("  " + labelStyle.Render("Weekday") + "  " + cli.RenderSparkline(days) + "\n")

	if len(a.dash.Insights) > 0 {
		b.WriteString("\n")
		for _, line := range a.dash.Insights {
			b.WriteString("  " + insightStyle.Render("• "+line) + "\n")
		}
	}
	return b.String()
}
