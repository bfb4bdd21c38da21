package cli

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDays() []DayEntry {
	return []DayEntry{
		{Day: 1, Path: "inputs/2025/day01.txt"},
		{Day: 3, Path: "inputs/2025/day03.txt", HasInput: true},
		{Day: 7, Path: "inputs/2025/day07.txt", HasInput: true},
	}
}

func press(t *testing.T, m DayListModel, key tea.KeyMsg) (DayListModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	dm, ok := next.(DayListModel)
	require.True(t, ok, "Update returned %T", next)
	return dm, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestNewDayListModelStartsOnFirstInput(t *testing.T) {
	m := NewDayListModel(2025, testDays())
	assert.Equal(t, 1, m.Cursor)

	m = NewDayListModel(2025, []DayEntry{{Day: 1}, {Day: 2}})
	assert.Equal(t, 0, m.Cursor)
}

func TestDayListModelNavigation(t *testing.T) {
	m := NewDayListModel(2025, testDays())

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 2, m.Cursor)
	m, _ = press(t, m, keyJ)
	assert.Equal(t, 2, m.Cursor, "cursor stops at the last day")

	m, _ = press(t, m, keyUp)
	m, _ = press(t, m, keyUp)
	m, _ = press(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor, "cursor stops at the first day")
}

func TestDayListModelSelect(t *testing.T) {
	m := NewDayListModel(2025, testDays())
	m, _ = press(t, m, keyDown)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, m.Selected)
	assert.Equal(t, 7, m.Selected.Day)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDayListModelSkipsMissingInput(t *testing.T) {
	m := NewDayListModel(2025, testDays())
	m, _ = press(t, m, keyUp)

	m, cmd := press(t, m, keyEnter)
	assert.Nil(t, m.Selected)
	assert.Nil(t, cmd)
}

func TestDayListModelQuit(t *testing.T) {
	m := NewDayListModel(2025, testDays())

	m, cmd := press(t, m, keyQ)
	assert.Nil(t, m.Selected)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDayListModelEmpty(t *testing.T) {
	m := NewDayListModel(2025, nil)
	m, cmd := press(t, m, keyEnter)
	assert.Nil(t, m.Selected)
	assert.Nil(t, cmd)
}

func TestDayListModelView(t *testing.T) {
	view := NewDayListModel(2025, testDays()).View()

	assert.Contains(t, view, "Select Day (2025)")
	assert.Contains(t, view, "day 01")
	assert.Contains(t, view, "no input")
	assert.Contains(t, view, "inputs/2025/day07.txt")
}

func TestDayEntries(t *testing.T) {
	e := newEnv(t)
	path := e.writeInput(2025, 7, "S")

	c := New(io.Discard, LogInfo)
	cfg, err := loadConfig("")
	require.NoError(t, err)
	c.config = cfg

	var withInput []int
	for _, d := range c.dayEntries(2025) {
		if d.HasInput {
			withInput = append(withInput, d.Day)
			assert.Equal(t, path, d.Path)
		}
	}
	assert.Equal(t, []int{7}, withInput)
	assert.Empty(t, c.dayEntries(2019))
}
