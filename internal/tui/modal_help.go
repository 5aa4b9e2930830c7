package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// The topmost modal receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// helpModal lists every key binding in a scrollable viewport.
type helpModal struct {
	ctx      ViewContext
	viewport viewport.Model
	help     help.Model
}

func newHelpModal(ctx ViewContext) *helpModal {
	h := help.New()
	h.ShowAll = true
	return &helpModal{
		ctx:      ctx,
		viewport: viewport.New(60, 16),
		help:     h,
	}
}

func (h *helpModal) ID() string { return "help" }

func (h *helpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	k := h.ctx.Keys
	switch {
	case key.Matches(keyMsg, k.Help), key.Matches(keyMsg, k.Back):
		return true, nil
	case key.Matches(keyMsg, k.Up):
		h.viewport.ScrollUp(1)
		return false, nil
	case key.Matches(keyMsg, k.Down):
		h.viewport.ScrollDown(1)
		return false, nil
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return false, cmd
}

func (h *helpModal) View(width, height int) string {
	st := h.ctx.styles

	modalWidth := max(20, width-8)   // 4 chars margin on each side
	modalHeight := max(8, height-4)  // 2 lines margin top and bottom
	contentWidth := modalWidth - 4   // modal borders
	contentHeight := modalHeight - 4 // header + status

	h.help.Width = contentWidth
	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(h.help.FullHelpView(h.ctx.Keys.FullHelp()))

	header := st.title.Width(contentWidth).Render("Keys")
	status := st.muted.Render("↑/↓: Scroll | ?/esc: Close")

	body := lipgloss.JoinVertical(lipgloss.Left, header, h.viewport.View(), status)
	modal := st.frame.
		Padding(0, 1).
		Width(modalWidth).
		Height(modalHeight).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
