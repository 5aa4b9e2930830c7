package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

// collectionPage lists the items of the current collection, preceded by a
// back entry. The cursor of each collection survives leaving the page.
type collectionPage struct {
	ctx     ViewContext
	id      catalog.CollectionID
	title   string
	menu    menu
	cursors map[catalog.CollectionID]int
}

func newCollectionPage(ctx ViewContext) *collectionPage {
	return &collectionPage{
		ctx:     ctx,
		cursors: make(map[catalog.CollectionID]int),
	}
}

func (p *collectionPage) ID() string { return pageCollection }

func (p *collectionPage) Enter(s nav.State) {
	sc, ok := s.(nav.ShowCollection)
	if !ok {
		return
	}
	if len(p.menu.entries) > 0 {
		p.cursors[p.id] = p.menu.cursor
	}
	p.id = sc.ID
	p.title = ""
	p.menu = menu{cursor: p.cursors[sc.ID]}

	coll, ok := p.ctx.Catalog.Collection(sc.ID)
	if ok {
		p.title = p.ctx.Content.CollectionTitle(coll)
	}
	for _, intent := range nav.Actions(p.ctx.Catalog, s) {
		p.menu.entries = append(p.menu.entries, menuEntry{
			label:  p.label(coll, intent),
			intent: intent,
		})
	}
	p.menu.move(0)
}

func (p *collectionPage) label(coll catalog.Collection, intent nav.Intent) string {
	switch in := intent.(type) {
	case nav.GoHomeIntent:
		return "← " + p.ctx.Content.Text(locale.MsgBack)
	case nav.OpenItemIntent:
		if it, ok := coll.Item(in.Key); ok {
			return p.ctx.Content.ItemName(it)
		}
	}
	return intent.String()
}

func (p *collectionPage) Update(msg tea.KeyMsg) (tea.Cmd, nav.Intent) {
	if key.Matches(msg, p.ctx.Keys.Back) {
		return nil, nav.GoHomeIntent{}
	}
	intent, _ := p.menu.handleKey(p.ctx.Keys, msg)
	if intent != nil {
		p.cursors[p.id] = p.menu.cursor
	}
	return nil, intent
}

func (p *collectionPage) View(width, height int) string {
	st := p.ctx.styles
	menuWidth := min(width-4, 48)

	block := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(p.title),
		"",
		p.menu.render(st, menuWidth),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (p *collectionPage) Bindings() []key.Binding {
	k := p.ctx.Keys
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back}
}
