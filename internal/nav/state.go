// Package nav owns the navigation state of the wonders browser and the
// transitions between screens.
//
// State is a closed variant: Home, ShowCollection or ShowItem. Transitions
// replace the whole value. Views never mutate state directly; they hand an
// Intent to Machine.Dispatch.
package nav

import (
	"fmt"

	"github.com/tinytelemetry/wonders/internal/catalog"
)

// State is the screen currently shown. Only the types in this package
// implement it.
type State interface {
	fmt.Stringer
	isState()
}

// Home is the initial menu.
type Home struct{}

// ShowCollection lists the items of one collection.
type ShowCollection struct {
	ID catalog.CollectionID
}

// ShowItem shows the detail card of one item.
type ShowItem struct {
	Key catalog.Key
}

func (Home) isState()           {}
func (ShowCollection) isState() {}
func (ShowItem) isState()       {}

func (Home) String() string             { return "home" }
func (s ShowCollection) String() string { return "collection:" + s.ID.String() }
func (s ShowItem) String() string       { return "item:" + string(s.Key) }

// Equal reports whether two states show the same screen.
func Equal(a, b State) bool {
	return a == b
}
