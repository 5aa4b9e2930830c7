package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

// itemPage is the detail card of one wonder with previous/home/next controls.
type itemPage struct {
	ctx        ViewContext
	key        catalog.Key
	item       catalog.Item
	collection catalog.Collection
	found      bool
}

func newItemPage(ctx ViewContext) *itemPage {
	return &itemPage{ctx: ctx}
}

func (p *itemPage) ID() string { return pageItem }

func (p *itemPage) Enter(s nav.State) {
	si, ok := s.(nav.ShowItem)
	if !ok {
		return
	}
	p.key = si.Key
	p.found = false
	it, owner, ok := p.ctx.Catalog.Item(si.Key)
	if !ok {
		return
	}
	coll, ok := p.ctx.Catalog.Collection(owner)
	if !ok {
		return
	}
	p.item, p.collection, p.found = it, coll, true
}

func (p *itemPage) Update(msg tea.KeyMsg) (tea.Cmd, nav.Intent) {
	k := p.ctx.Keys
	switch {
	case key.Matches(msg, k.Previous):
		return nil, nav.PreviousIntent{}
	case key.Matches(msg, k.Next):
		return nil, nav.NextIntent{}
	case key.Matches(msg, k.Back), key.Matches(msg, k.Enter):
		return nil, nav.GoHomeIntent{}
	}
	return nil, nil
}

func (p *itemPage) View(width, height int) string {
	st := p.ctx.styles
	c := p.ctx.Content
	if !p.found {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			st.muted.Render("unknown wonder "+string(p.key)))
	}

	cardWidth := min(width-4, 56)
	image := st.frame.
		Width(cardWidth - 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			st.accent.Render("["+p.item.Image+"]"),
			st.muted.Render(c.ImageDescription(p.item)),
		))

	card := lipgloss.JoinVertical(lipgloss.Center,
		st.muted.Render(c.CollectionTitle(p.collection)),
		st.title.Render(c.ItemName(p.item)),
		"",
		image,
		"",
		st.text.Render(c.ItemLocation(p.item)),
		st.heading.Render(c.ItemYear(p.item)),
	)

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		st.button.Render("◀ "+c.Text(locale.MsgPrevious)),
		"  ",
		st.button.Render(c.Text(locale.MsgHome)),
		"  ",
		st.button.Render(c.Text(locale.MsgNext)+" ▶"),
	)

	position := st.muted.Render(positionLabel(p.collection, p.key))

	block := lipgloss.JoinVertical(lipgloss.Center, card, "", controls, position)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (p *itemPage) Bindings() []key.Binding {
	k := p.ctx.Keys
	return []key.Binding{k.Previous, k.Next, k.Back}
}

// positionLabel renders "3 / 7" for the item's place in its collection.
func positionLabel(coll catalog.Collection, k catalog.Key) string {
	i := coll.IndexOf(k)
	if i < 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", i+1, coll.Len())
}
