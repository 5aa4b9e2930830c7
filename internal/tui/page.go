package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wonders/internal/nav"
)

// Page renders one kind of navigation state (home, collection, item).
type Page interface {
	ID() string
	// Enter is called whenever the machine lands on a state this page shows.
	Enter(s nav.State)
	// Update handles a key press and may return an intent for the app to
	// dispatch. It never mutates navigation state itself.
	Update(msg tea.KeyMsg) (tea.Cmd, nav.Intent)
	View(width, height int) string
	// Bindings lists the keys shown in the status line.
	Bindings() []key.Binding
}

const (
	pageHome       = "home"
	pageCollection = "collection"
	pageItem       = "item"
)

// pageFor maps a state variant to the page that renders it.
func pageFor(s nav.State) string {
	switch s.(type) {
	case nav.ShowCollection:
		return pageCollection
	case nav.ShowItem:
		return pageItem
	default:
		return pageHome
	}
}
