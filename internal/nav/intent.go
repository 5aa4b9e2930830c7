package nav

import (
	"fmt"

	"github.com/tinytelemetry/wonders/internal/catalog"
)

// Intent is a navigation request produced by the view layer. Views return
// intents; Dispatch applies them.
type Intent interface {
	fmt.Stringer
	isIntent()
}

// GoHomeIntent requests the home menu.
type GoHomeIntent struct{}

// OpenCollectionIntent requests a collection listing.
type OpenCollectionIntent struct {
	ID catalog.CollectionID
}

// OpenItemIntent requests the detail card of an item.
type OpenItemIntent struct {
	Key catalog.Key
}

// OpenRandomIntent requests a random item.
type OpenRandomIntent struct{}

// NextIntent requests the following item of the current collection.
type NextIntent struct{}

// PreviousIntent requests the preceding item of the current collection.
type PreviousIntent struct{}

func (GoHomeIntent) isIntent()         {}
func (OpenCollectionIntent) isIntent() {}
func (OpenItemIntent) isIntent()       {}
func (OpenRandomIntent) isIntent()     {}
func (NextIntent) isIntent()           {}
func (PreviousIntent) isIntent()       {}

func (GoHomeIntent) String() string           { return "go_home" }
func (i OpenCollectionIntent) String() string { return "open_collection:" + i.ID.String() }
func (i OpenItemIntent) String() string       { return "open_item:" + string(i.Key) }
func (OpenRandomIntent) String() string       { return "open_random" }
func (NextIntent) String() string             { return "next" }
func (PreviousIntent) String() string         { return "previous" }

// Dispatch applies an intent to the machine. A nil intent is a no-op.
func (m *Machine) Dispatch(in Intent) error {
	switch in := in.(type) {
	case nil:
		return nil
	case GoHomeIntent:
		return m.GoHome()
	case OpenCollectionIntent:
		return m.OpenCollection(in.ID)
	case OpenItemIntent:
		return m.OpenItem(in.Key)
	case OpenRandomIntent:
		return m.OpenRandomItem()
	case NextIntent:
		return m.Next()
	case PreviousIntent:
		return m.Previous()
	default:
		return m.violation("dispatch", fmt.Errorf("unknown intent %T", in))
	}
}

// Actions lists the intents a view may offer on the screen for s, in display
// order. Unknown collections yield only the way home.
func Actions(cat *catalog.Catalog, s State) []Intent {
	switch s := s.(type) {
	case Home:
		actions := make([]Intent, 0, 3)
		for _, c := range cat.Collections() {
			actions = append(actions, OpenCollectionIntent{ID: c.ID})
		}
		return append(actions, OpenRandomIntent{})
	case ShowCollection:
		actions := []Intent{GoHomeIntent{}}
		coll, ok := cat.Collection(s.ID)
		if !ok {
			return actions
		}
		for _, it := range coll.Items() {
			actions = append(actions, OpenItemIntent{Key: it.Key})
		}
		return actions
	case ShowItem:
		return []Intent{PreviousIntent{}, GoHomeIntent{}, NextIntent{}}
	}
	return nil
}
