package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

// homePage is the initial menu: one entry per collection plus a random pick.
type homePage struct {
	ctx  ViewContext
	menu menu
}

func newHomePage(ctx ViewContext) *homePage {
	p := &homePage{ctx: ctx}
	for _, intent := range nav.Actions(ctx.Catalog, nav.Home{}) {
		p.menu.entries = append(p.menu.entries, menuEntry{
			label:  p.label(intent),
			intent: intent,
		})
	}
	return p
}

func (p *homePage) label(intent nav.Intent) string {
	switch in := intent.(type) {
	case nav.OpenCollectionIntent:
		if coll, ok := p.ctx.Catalog.Collection(in.ID); ok {
			return p.ctx.Content.CollectionTitle(coll)
		}
	case nav.OpenRandomIntent:
		return p.ctx.Content.Text(locale.MsgRandom)
	}
	return intent.String()
}

func (p *homePage) ID() string { return pageHome }

func (p *homePage) Enter(nav.State) {}

func (p *homePage) Update(msg tea.KeyMsg) (tea.Cmd, nav.Intent) {
	k := p.ctx.Keys
	switch {
	case key.Matches(msg, k.Ancient):
		return nil, nav.OpenCollectionIntent{ID: catalog.Ancient}
	case key.Matches(msg, k.Modern):
		return nil, nav.OpenCollectionIntent{ID: catalog.Modern}
	case key.Matches(msg, k.Random):
		return nil, nav.OpenRandomIntent{}
	}
	intent, _ := p.menu.handleKey(k, msg)
	return nil, intent
}

func (p *homePage) View(width, height int) string {
	st := p.ctx.styles
	menuWidth := min(width-4, 48)

	title := st.title.Render(p.ctx.Content.Text(locale.MsgAppTitle))
	about := st.muted.Render(p.ctx.Content.Text(locale.MsgAbout))

	block := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		p.menu.render(st, menuWidth),
		"",
		about,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (p *homePage) Bindings() []key.Binding {
	k := p.ctx.Keys
	return []key.Binding{k.Up, k.Down, k.Enter, k.Ancient, k.Modern, k.Random}
}
