package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// DefaultSkinName selects the built-in palette.
const DefaultSkinName = "default"

// ErrSkinNotFound is returned when a named skin has no file.
var ErrSkinNotFound = errors.New("tui: skin not found")

// Skin is a terminal color palette. Values are lipgloss colors: ANSI numbers
// ("12") or hex ("#1E3A8A").
type Skin struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Text         string `yaml:"text"`
	Muted        string `yaml:"muted"`
	Accent       string `yaml:"accent"`
	Border       string `yaml:"border"`
	Selected     string `yaml:"selected"`
	SelectedText string `yaml:"selected-text"`
	StatusBar    string `yaml:"status-bar"`
	StatusText   string `yaml:"status-text"`
}

// DefaultSkin returns the built-in palette.
func DefaultSkin() Skin {
	return Skin{
		Name:         DefaultSkinName,
		Title:        "#00CAC7",
		Text:         "#FFFFFF",
		Muted:        "8",
		Accent:       "#49E209",
		Border:       "#3B82F6",
		Selected:     "#1E3A8A",
		SelectedText: "#FFFFFF",
		StatusBar:    "#1E3A8A",
		StatusText:   "#FFFFFF",
	}
}

// LoadSkin resolves name to a palette. "default" (or "") is built in; any
// other name is read from <configDir>/skins/<name>.yml. Fields missing from
// the file keep their default value.
func LoadSkin(name, configDir string) (Skin, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == DefaultSkinName {
		return DefaultSkin(), nil
	}
	if strings.ContainsAny(name, `/\`) {
		return DefaultSkin(), fmt.Errorf("tui: invalid skin name %q", name)
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSkin(), fmt.Errorf("%w: %s", ErrSkinNotFound, path)
		}
		return DefaultSkin(), fmt.Errorf("tui: read skin: %w", err)
	}

	skin := DefaultSkin()
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return DefaultSkin(), fmt.Errorf("tui: parse skin %s: %w", path, err)
	}
	if skin.Name == "" || skin.Name == DefaultSkinName {
		skin.Name = name
	}
	return skin, nil
}

// styles are the lipgloss styles derived from a skin.
type styles struct {
	title      lipgloss.Style
	heading    lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
	entry      lipgloss.Style
	selected   lipgloss.Style
	button     lipgloss.Style
	frame      lipgloss.Style
	statusLine lipgloss.Style
}

func newStyles(s Skin) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Title)).
			Bold(true),
		heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Text)).
			Bold(true),
		text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Text)),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Muted)),
		accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Accent)).
			Bold(true),
		entry: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Text)).
			Padding(0, 2),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.SelectedText)).
			Background(lipgloss.Color(s.Selected)).
			Bold(true).
			Padding(0, 2),
		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Border)).
			Padding(0, 1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Border)).
			Padding(1, 2),
		statusLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.StatusText)).
			Background(lipgloss.Color(s.StatusBar)),
	}
}
