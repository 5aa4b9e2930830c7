package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/locale"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every wonder in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := locale.New(cfg.Locale)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), catalog.Default(), content)
		},
	}
}

var (
	listTitle = lipgloss.NewStyle().Bold(true).Underline(true)
	listKey   = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	listMuted = lipgloss.NewStyle().Faint(true)
)

// printCatalog writes one block per collection with one line per item.
func printCatalog(w io.Writer, cat *catalog.Catalog, content *locale.Content) error {
	for i, coll := range cat.Collections() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, listTitle.Render(content.CollectionTitle(coll))); err != nil {
			return err
		}
		for _, it := range coll.Items() {
			line := fmt.Sprintf("%s  %s %s",
				listKey.Render(string(it.Key)),
				content.ItemName(it),
				listMuted.Render(fmt.Sprintf("(%s, %s)", content.ItemLocation(it), content.ItemYear(it))),
			)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
