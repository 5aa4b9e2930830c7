package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

// ViewContext provides read-only dependencies to pages. Pages never see the
// navigation machine; they return intents instead.
type ViewContext struct {
	Catalog *catalog.Catalog
	Content *locale.Content
	Keys    KeyMap
	styles  styles
}

// IntentMsg carries a navigation intent through the Bubble Tea loop so that
// commands can navigate without touching the machine.
type IntentMsg struct {
	Intent nav.Intent
}

// Navigate returns a command that requests intent.
func Navigate(intent nav.Intent) tea.Cmd {
	return func() tea.Msg { return IntentMsg{Intent: intent} }
}
