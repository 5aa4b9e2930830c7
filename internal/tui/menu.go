package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/wonders/internal/nav"
)

// menuEntry is one selectable line of a menu.
type menuEntry struct {
	label  string
	intent nav.Intent
}

// menu is a vertical list with a clamped cursor.
type menu struct {
	entries []menuEntry
	cursor  int
}

func (m *menu) move(delta int) {
	if len(m.entries) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(len(m.entries)-1, m.cursor+delta))
}

func (m *menu) selected() nav.Intent {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor].intent
}

// handleKey moves the cursor or selects the current entry. handled is false
// for keys the menu does not own.
func (m *menu) handleKey(keys KeyMap, msg tea.KeyMsg) (intent nav.Intent, handled bool) {
	switch {
	case key.Matches(msg, keys.Up):
		m.move(-1)
		return nil, true
	case key.Matches(msg, keys.Down):
		m.move(1)
		return nil, true
	case key.Matches(msg, keys.Top):
		m.cursor = 0
		return nil, true
	case key.Matches(msg, keys.Bottom):
		m.move(len(m.entries))
		return nil, true
	case key.Matches(msg, keys.Enter):
		return m.selected(), true
	}
	return nil, false
}

func (m *menu) render(st styles, width int) string {
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		style := st.entry
		prefix := "  "
		if i == m.cursor {
			style = st.selected
			prefix = "▸ "
		}
		lines = append(lines, style.Width(width).Render(prefix+truncate(e.label, width-6)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
