package commands

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/wonders/internal/catalog"
	"github.com/tinytelemetry/wonders/internal/nav"
)

// parseStart turns the --open value into the intent dispatched at startup:
// "home" (or empty), a collection name, "random", or an item key.
func parseStart(cat *catalog.Catalog, raw string) (nav.Intent, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	switch raw {
	case "", "home":
		return nil, nil
	case "random":
		return nav.OpenRandomIntent{}, nil
	}
	if id, err := catalog.ParseCollectionID(raw); err == nil {
		return nav.OpenCollectionIntent{ID: id}, nil
	}
	key := catalog.Key(raw)
	if _, _, ok := cat.Item(key); ok {
		return nav.OpenItemIntent{Key: key}, nil
	}
	return nil, fmt.Errorf("open: %q is not home, random, a collection or a wonder key", raw)
}
