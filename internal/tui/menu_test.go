package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wonders/internal/nav"
)

func testMenu() *menu {
	return &menu{entries: []menuEntry{
		{label: "back", intent: nav.GoHomeIntent{}},
		{label: "one", intent: nav.OpenItemIntent{Key: "1"}},
		{label: "two", intent: nav.OpenItemIntent{Key: "2"}},
	}}
}

func TestMenu_CursorIsClamped(t *testing.T) {
	t.Parallel()
	m := testMenu()
	m.move(-5)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m.move(10)
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	empty := &menu{cursor: 4}
	empty.move(1)
	if empty.cursor != 0 || empty.selected() != nil {
		t.Fatalf("empty menu cursor = %d, selected = %v", empty.cursor, empty.selected())
	}
}

func TestMenu_HandleKey(t *testing.T) {
	t.Parallel()
	keys := DefaultKeyMap()
	m := testMenu()

	if _, handled := m.handleKey(keys, runes("j")); !handled || m.cursor != 1 {
		t.Fatalf("down: handled=%v cursor=%d", handled, m.cursor)
	}
	intent, handled := m.handleKey(keys, tea.KeyMsg{Type: tea.KeyEnter})
	if !handled || intent != (nav.OpenItemIntent{Key: "1"}) {
		t.Fatalf("enter = %v, %v; want open_item:1", intent, handled)
	}
	if _, handled := m.handleKey(keys, runes("G")); !handled || m.cursor != 2 {
		t.Fatalf("bottom: handled=%v cursor=%d", handled, m.cursor)
	}
	if _, handled := m.handleKey(keys, runes("g")); !handled || m.cursor != 0 {
		t.Fatalf("top: handled=%v cursor=%d", handled, m.cursor)
	}
	if _, handled := m.handleKey(keys, runes("x")); handled {
		t.Fatal("unbound key should not be handled")
	}
}

func TestMenu_RenderMarksCursor(t *testing.T) {
	t.Parallel()
	m := testMenu()
	m.move(1)
	out := m.render(newStyles(DefaultSkin()), 30)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "▸ one") {
		t.Fatalf("selected line = %q, want marker", lines[1])
	}
	if strings.Contains(lines[0], "▸") {
		t.Fatalf("unselected line = %q has marker", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"Great Pyramid of Giza", 10, "Great Pyr…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
