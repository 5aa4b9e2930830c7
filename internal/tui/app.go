package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

const (
	minWidth  = 40
	minHeight = 12
)

// Options configures an App.
type Options struct {
	Skin   Skin
	Keys   KeyMap
	// Logger receives contract violations. Nil disables logging.
	Logger *zerolog.Logger
	// Strict turns contract violations into a fatal error instead of a
	// logged no-op.
	Strict bool
	// Start is dispatched once when the program starts.
	Start nav.Intent
}

// App is the top-level Bubble Tea model. It renders the page matching the
// machine's current state and dispatches the intents pages return.
type App struct {
	machine *nav.Machine
	ctx     ViewContext
	pages   map[string]Page
	active  string
	modals  []Modal
	help    help.Model
	log     zerolog.Logger
	strict  bool
	start   nav.Intent
	err     error
	width   int
	height  int
}

// NewApp wires the pages to machine. The machine is owned by the caller.
func NewApp(machine *nav.Machine, content *locale.Content, opts Options) *App {
	if opts.Skin.Name == "" {
		opts.Skin = DefaultSkin()
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	ctx := ViewContext{
		Catalog: machine.Catalog(),
		Content: content,
		Keys:    opts.Keys,
		styles:  newStyles(opts.Skin),
	}

	pages := []Page{newHomePage(ctx), newCollectionPage(ctx), newItemPage(ctx)}
	pageMap := make(map[string]Page, len(pages))
	for _, p := range pages {
		pageMap[p.ID()] = p
	}

	a := &App{
		machine: machine,
		ctx:     ctx,
		pages:   pageMap,
		help:    help.New(),
		log:     log,
		strict:  opts.Strict,
		start:   opts.Start,
	}
	a.sync()
	return a
}

// Err returns the contract violation that stopped the program in strict mode.
func (a *App) Err() error { return a.err }

// State returns the navigation state being rendered.
func (a *App) State() nav.State { return a.machine.Current() }

func (a *App) Init() tea.Cmd {
	if a.start != nil {
		return Navigate(a.start)
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case IntentMsg:
		return a, a.dispatch(msg.Intent)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	if modal := a.topModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.popModal()
		}
		return a, cmd
	}
	return a, nil
}

// handleKey gives the modal stack the event first, then global shortcuts,
// then the active page.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := a.ctx.Keys
	if key.Matches(msg, k.ForceQuit) {
		return tea.Quit
	}

	if modal := a.topModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.popModal()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		a.pushModal(newHelpModal(a.ctx))
		return nil
	case key.Matches(msg, k.Home):
		return a.dispatch(nav.GoHomeIntent{})
	}

	p, ok := a.pages[a.active]
	if !ok {
		return nil
	}
	cmd, intent := p.Update(msg)
	if intent == nil {
		return cmd
	}
	return tea.Batch(cmd, a.dispatch(intent))
}

// dispatch applies intent to the machine. Contract violations are logged and
// ignored, or stop the program in strict mode.
func (a *App) dispatch(intent nav.Intent) tea.Cmd {
	if intent == nil {
		return nil
	}
	from := a.machine.Current()
	if err := a.machine.Dispatch(intent); err != nil {
		a.log.Warn().
			Err(err).
			Str("intent", intent.String()).
			Str("state", from.String()).
			Msg("navigation contract violation")
		if a.strict {
			a.err = err
			return tea.Quit
		}
		return nil
	}
	a.sync()
	return nil
}

// sync points the active page at the machine's current state.
func (a *App) sync() {
	s := a.machine.Current()
	a.active = pageFor(s)
	if p, ok := a.pages[a.active]; ok {
		p.Enter(s)
	}
}

func (a *App) pushModal(m Modal) {
	for _, existing := range a.modals {
		if existing.ID() == m.ID() {
			return
		}
	}
	a.modals = append(a.modals, m)
}

func (a *App) popModal() {
	if len(a.modals) > 0 {
		a.modals = a.modals[:len(a.modals)-1]
	}
}

func (a *App) topModal() Modal {
	if len(a.modals) == 0 {
		return nil
	}
	return a.modals[len(a.modals)-1]
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Loading..."
	}
	if a.width < minWidth || a.height < minHeight {
		return "Terminal too small. Resize to at least 40x12."
	}

	if modal := a.topModal(); modal != nil {
		return modal.View(a.width, a.height)
	}

	p, ok := a.pages[a.active]
	if !ok {
		return "No active page"
	}

	statusLine := a.renderStatusLine(p)
	body := p.View(a.width, a.height-lipgloss.Height(statusLine))
	return lipgloss.JoinVertical(lipgloss.Left, body, statusLine)
}

// renderStatusLine shows the screen name on the left and key help on the right.
func (a *App) renderStatusLine(p Page) string {
	st := a.ctx.styles
	left := " " + a.machine.Current().String() + " "

	a.help.Width = max(0, a.width-lipgloss.Width(left)-1)
	bindings := append(p.Bindings(), a.ctx.Keys.ShortHelp()...)
	right := a.help.ShortHelpView(bindings)

	gap := max(0, a.width-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + strings.Repeat(" ", gap) + right
	return st.statusLine.Width(a.width).Render(line)
}
