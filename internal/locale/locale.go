// Package locale resolves the display text of catalog items and screens.
//
// Items only carry message IDs; this package turns them into strings for the
// configured language using go-i18n bundles built from the embedded TOML files
// under messages/.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tinytelemetry/wonders/internal/catalog"
)

// DefaultLanguage is used when the requested language has no translation.
var DefaultLanguage = language.English

// UI message IDs shared by the views.
const (
	MsgAppTitle       = "initial_menu_app_title"
	MsgRandom         = "random_wonder_button_text"
	MsgAbout          = "about_text"
	MsgBack           = "back_button_text"
	MsgPrevious       = "previous_button_text"
	MsgNext           = "next_button_text"
	MsgHome           = "initial_menu_button_text"
	msgImageDescribed = "image_description"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Content is a read-only lookup of localized strings.
type Content struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and selects lang ("en", "es-MX", ...).
// An empty lang selects DefaultLanguage. A well-formed tag without
// translations falls back to DefaultLanguage.
func New(lang string) (*Content, error) {
	tag := DefaultLanguage
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("locale: parse %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle, err := loadBundle(messageFS, "messages")
	if err != nil {
		return nil, err
	}

	supported := bundle.LanguageTags()
	_, idx, conf := language.NewMatcher(supported).Match(tag)
	matched := DefaultLanguage
	if conf != language.No {
		matched = supported[idx]
	}

	return &Content{
		bundle:    bundle,
		localizer: newLocalizer(bundle, matched),
		tag:       matched,
	}, nil
}

// loadBundle parses every TOML file in dir into a bundle whose default
// language is DefaultLanguage.
func loadBundle(fsys fs.FS, dir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("locale: read messages: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".toml" {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(dir, e.Name())); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

func newLocalizer(bundle *i18n.Bundle, tag language.Tag) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, tag.String())
}

// Tag returns the language actually used for lookups.
func (c *Content) Tag() language.Tag { return c.tag }

// Supported lists the languages with message files.
func (c *Content) Supported() []language.Tag {
	return c.bundle.LanguageTags()
}

// Text returns the localized string for id. Unknown IDs come back verbatim
// so a missing translation is visible without failing the view.
func (c *Content) Text(id string) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Has reports whether id resolves in the selected language or the fallback.
func (c *Content) Has(id string) bool {
	s, _ := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	return s != ""
}

func (c *Content) localize(cfg *i18n.LocalizeConfig) string {
	// On fallback go-i18n returns the default-language text together with a
	// MessageNotFoundErr; the text is what we want.
	s, _ := c.localizer.Localize(cfg)
	if s == "" {
		return cfg.MessageID
	}
	return s
}

// ItemName returns the display name of it.
func (c *Content) ItemName(it catalog.Item) string { return c.Text(it.Name) }

// ItemYear returns the localized construction date of it.
func (c *Content) ItemYear(it catalog.Item) string { return c.Text(it.Year) }

// ItemLocation returns the localized location of it.
func (c *Content) ItemLocation(it catalog.Item) string { return c.Text(it.Location) }

// ImageDescription returns the alternative text for the image of it.
func (c *Content) ImageDescription(it catalog.Item) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    msgImageDescribed,
		TemplateData: map[string]string{"Name": c.ItemName(it)},
	})
}

// CollectionTitle returns the display name of coll.
func (c *Content) CollectionTitle(coll catalog.Collection) string { return c.Text(coll.Name) }
