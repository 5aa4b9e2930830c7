package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
	"github.com/tinytelemetry/wonders/internal/logging"
	"github.com/tinytelemetry/wonders/internal/nav"
	"github.com/tinytelemetry/wonders/internal/tui"
)

func runTUI(cfg appConfig) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	app, err := newApp(cfg, logger, os.Stderr)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("wonders requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return app.Err()
}

// newApp builds the TUI model for cfg. Skin problems are reported on warn
// and fall back to the default palette.
func newApp(cfg appConfig, logger zerolog.Logger, warn io.Writer) (*tui.App, error) {
	content, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, err
	}

	skin, err := tui.LoadSkin(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		fmt.Fprintf(warn, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		logger.Warn().Err(err).Str("skin", cfg.Skin).Msg("skin fallback")
	}

	cat := catalog.Default()
	start, err := parseStart(cat, cfg.Open)
	if err != nil {
		return nil, err
	}

	navLog := logging.Component(logger, "nav")
	opts := []nav.Option{
		nav.WithObserver(func(from, to nav.State) {
			navLog.Debug().Str("from", from.String()).Str("to", to.String()).Msg("transition")
		}),
	}
	if cfg.Seed != 0 {
		opts = append(opts, nav.WithSeed(cfg.Seed))
	}
	machine := nav.NewMachine(cat, opts...)

	tuiLog := logging.Component(logger, "tui")
	logger.Info().
		Str("locale", content.Tag().String()).
		Str("skin", skin.Name).
		Bool("strict", cfg.Strict).
		Msg("starting")

	return tui.NewApp(machine, content, tui.Options{
		Skin:   skin,
		Logger: &tuiLog,
		Strict: cfg.Strict,
		Start:  start,
	}), nil
}
