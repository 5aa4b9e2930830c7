package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/nav"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	content, err := locale.New("en")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	m := nav.NewMachine(catalog.Default(), nav.WithSeed(7))
	app := NewApp(m, content, opts)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app *App, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		app.Update(msg)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_StartsHome(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("State() = %v, want home", got)
	}
	if app.active != pageHome {
		t.Fatalf("active = %q, want %q", app.active, pageHome)
	}
}

func TestApp_HomeShortcuts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  string
		want nav.State
	}{
		{"a", nav.ShowCollection{ID: catalog.Ancient}},
		{"m", nav.ShowCollection{ID: catalog.Modern}},
	}
	for _, tt := range tests {
		app := newTestApp(t, Options{})
		press(app, runes(tt.key))
		if got := app.State(); !nav.Equal(got, tt.want) {
			t.Fatalf("after %q State() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestApp_RandomLandsOnItem(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	press(app, runes("r"))
	si, ok := app.State().(nav.ShowItem)
	if !ok {
		t.Fatalf("State() = %v, want an item", app.State())
	}
	if _, _, ok := catalog.Default().Item(si.Key); !ok {
		t.Fatalf("random key %q not in catalog", si.Key)
	}
	if app.active != pageItem {
		t.Fatalf("active = %q, want %q", app.active, pageItem)
	}
}

func TestApp_MenuFlowToItemAndAround(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})

	// Home menu: first entry is the ancient collection.
	press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.ShowCollection{ID: catalog.Ancient}) {
		t.Fatalf("State() = %v, want collection:ancient", got)
	}

	// Collection menu: back entry, then the items in order.
	press(app, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "1"}) {
		t.Fatalf("State() = %v, want item:1", got)
	}

	press(app, tea.KeyMsg{Type: tea.KeyLeft})
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "7"}) {
		t.Fatalf("after previous State() = %v, want item:7", got)
	}
	press(app, runes("n"), runes("n"))
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "2"}) {
		t.Fatalf("after next x2 State() = %v, want item:2", got)
	}

	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("after back State() = %v, want home", got)
	}
}

func TestApp_CollectionBackEntryGoesHome(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	press(app, runes("m"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("State() = %v, want home", got)
	}
}

func TestApp_ModernLastItems(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	// G jumps to the last entry, k moves one up: keys 14 and 13.
	press(app, runes("m"), runes("G"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "14"}) {
		t.Fatalf("State() = %v, want item:14", got)
	}
	press(app, tea.KeyMsg{Type: tea.KeyEsc}, runes("m"), runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "13"}) {
		t.Fatalf("State() = %v, want item:13", got)
	}
}

func TestApp_CollectionCursorIsRestored(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	press(app, runes("a"), runes("j"), runes("j"), runes("j"))
	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("State() = %v, want home", got)
	}
	press(app, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "3"}) {
		t.Fatalf("State() = %v, want item:3", got)
	}
}

func TestApp_GlobalHomeKey(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	press(app, runes("r"), runes("H"))
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("State() = %v, want home", got)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	if _, cmd := app.Update(runes("q")); !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if _, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
}

func TestApp_ViolationIsLoggedAndIgnored(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	app := newTestApp(t, Options{Logger: &logger})

	_, cmd := app.Update(IntentMsg{Intent: nav.NextIntent{}})
	if cmd != nil {
		t.Fatal("non-strict violation should not return a command")
	}
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("State() = %v, want home", got)
	}
	if app.Err() != nil {
		t.Fatalf("Err() = %v, want nil", app.Err())
	}
	if !strings.Contains(buf.String(), "navigation contract violation") {
		t.Fatalf("log = %q, want a violation entry", buf.String())
	}
}

func TestApp_StrictViolationQuits(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{Strict: true})

	_, cmd := app.Update(IntentMsg{Intent: nav.PreviousIntent{}})
	if !isQuit(cmd) {
		t.Fatal("strict violation should quit")
	}
	err := app.Err()
	if !errors.Is(err, nav.ErrNotShowingItem) {
		t.Fatalf("Err() = %v, want ErrNotShowingItem", err)
	}
	var ce *nav.ContractError
	if !errors.As(err, &ce) || ce.Op != "previous" {
		t.Fatalf("Err() = %#v, want ContractError for previous", err)
	}
}

func TestApp_StrictUnknownItem(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{Strict: true})
	app.Update(IntentMsg{Intent: nav.OpenItemIntent{Key: "99"}})
	if !errors.Is(app.Err(), catalog.ErrLookupMiss) {
		t.Fatalf("Err() = %v, want ErrLookupMiss", app.Err())
	}
}

func TestApp_StartIntent(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{Start: nav.OpenItemIntent{Key: "13"}})
	cmd := app.Init()
	if cmd == nil {
		t.Fatal("Init() = nil, want start command")
	}
	app.Update(cmd())
	if got := app.State(); !nav.Equal(got, nav.ShowItem{Key: "13"}) {
		t.Fatalf("State() = %v, want item:13", got)
	}
}

func TestApp_InitWithoutStart(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})
	if cmd := app.Init(); cmd != nil {
		t.Fatal("Init() should be nil without a start intent")
	}
}

func TestApp_HelpModalCapturesKeys(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})

	press(app, runes("?"))
	if app.topModal() == nil {
		t.Fatal("help modal not opened")
	}
	if !strings.Contains(app.View(), "Keys") {
		t.Fatal("help modal view missing header")
	}
	app.pushModal(newHelpModal(app.ctx))
	if len(app.modals) != 1 {
		t.Fatalf("modals = %d, want 1", len(app.modals))
	}

	press(app, runes("a"))
	if got := app.State(); !nav.Equal(got, nav.Home{}) {
		t.Fatalf("modal should swallow keys, State() = %v", got)
	}

	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.topModal() != nil {
		t.Fatal("esc should close the help modal")
	}
	press(app, runes("a"))
	if got := app.State(); !nav.Equal(got, nav.ShowCollection{ID: catalog.Ancient}) {
		t.Fatalf("State() = %v, want collection:ancient", got)
	}
}

func TestApp_ViewRendersCurrentScreen(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, Options{})

	home := app.View()
	for _, want := range []string{"Wonders of the Ancient World", "New Wonders of the World", "home"} {
		if !strings.Contains(home, want) {
			t.Fatalf("home view missing %q", want)
		}
	}

	app.Update(IntentMsg{Intent: nav.OpenItemIntent{Key: "13"}})
	item := app.View()
	for _, want := range []string{"Taj Mahal", "Agra, India", "1653 AD", "6 / 7", "item:13"} {
		if !strings.Contains(item, want) {
			t.Fatalf("item view missing %q", want)
		}
	}
}

func TestApp_ViewBeforeSizeAndTooSmall(t *testing.T) {
	t.Parallel()
	content, err := locale.New("en")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	app := NewApp(nav.NewMachine(catalog.Default()), content, Options{})
	if got := app.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
	app.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if got := app.View(); !strings.Contains(got, "Terminal too small") {
		t.Fatalf("View() = %q, want too-small notice", got)
	}
}

func TestApp_SpanishContent(t *testing.T) {
	t.Parallel()
	content, err := locale.New("es")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	app := NewApp(nav.NewMachine(catalog.Default()), content, Options{})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if got := app.View(); !strings.Contains(got, "Maravillas del Mundo Antiguo") {
		t.Fatal("spanish home view missing ancient collection title")
	}
}
