package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/awlodge/adventofcode/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// DayEntry is a registered puzzle day and the location of its input.
type DayEntry struct {
	Day      int
	Path     string
	HasInput bool
}

// dayEntries lists the registered days of year with their input files.
func (c *CLI) dayEntries(year int) []DayEntry {
	days := c.Registry.Days(year)
	entries := make([]DayEntry, len(days))
	for i, day := range days {
		path := inputPath(c.config.InputDir, year, day)
		_, err := os.Stat(path)
		entries[i] = DayEntry{Day: day, Path: path, HasInput: err == nil}
	}
	return entries
}

// =============================================================================
// DayListModel - Interactive day selection
// =============================================================================

// DayListModel is the bubbletea model for interactive day selection.
// Days without an input file are shown but cannot be selected.
type DayListModel struct {
	Year     int
	Days     []DayEntry
	Cursor   int
	Selected *DayEntry
}

// NewDayListModel creates a day list model with the cursor on the first
// day that has an input.
func NewDayListModel(year int, days []DayEntry) DayListModel {
	m := DayListModel{Year: year, Days: days}
	for i, d := range days {
		if d.HasInput {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m DayListModel) Init() tea.Cmd {
	return nil
}

func (m DayListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Days)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Days) == 0 || !m.Days[m.Cursor].HasInput {
				return m, nil
			}
			day := m.Days[m.Cursor]
			m.Selected = &day
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DayListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Select Day (%d)", m.Year)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, d := range m.Days {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		status := StyleWarning.Render(iconWarning)
		detail := "no input"
		if d.HasInput {
			status = styleIconSuccess.Render(iconSuccess)
			detail = d.Path
		}
		line := fmt.Sprintf("%s%s day %02d  %s", cursor, status, d.Day, listDimStyle.Render(detail))

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case !d.HasInput:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickDay asks the user to choose one of the registered days of year.
// It reports false when the picker was closed without a selection.
func (c *CLI) pickDay(year int) (int, bool, error) {
	entries := c.dayEntries(year)
	if len(entries) == 0 {
		return 0, false, errors.New(errors.ErrCodeSolverNotFound, "no solvers registered for %d", year)
	}

	p := tea.NewProgram(NewDayListModel(year, entries), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInternal, err, "day picker")
	}

	fm, ok := finalModel.(DayListModel)
	if !ok || fm.Selected == nil {
		return 0, false, nil
	}
	return fm.Selected.Day, true, nil
}
