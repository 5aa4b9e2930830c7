package nav

import (
	"fmt"
	"math/rand/v2"

	"github.com/tinytelemetry/wonders/internal/catalog"
)

// Observer is called after every successful transition.
type Observer func(from, to State)

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the random source used by OpenRandomItem.
func WithRand(r *rand.Rand) Option {
	return func(m *Machine) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithSeed makes OpenRandomItem deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithObserver registers a transition hook.
func WithObserver(fn Observer) Option {
	return func(m *Machine) {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
	}
}

// Machine holds the current State and applies transitions over a catalog.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Machine struct {
	catalog   *catalog.Catalog
	state     State
	keys      []catalog.Key
	rng       *rand.Rand
	observers []Observer
}

// NewMachine returns a machine positioned on Home.
func NewMachine(cat *catalog.Catalog, opts ...Option) *Machine {
	m := &Machine{
		catalog: cat,
		state:   Home{},
		keys:    cat.Keys(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the state being shown.
func (m *Machine) Current() State { return m.state }

// Catalog returns the catalog the machine navigates.
func (m *Machine) Catalog() *catalog.Catalog { return m.catalog }

// GoHome returns to the initial menu. It is valid from every state.
func (m *Machine) GoHome() error {
	m.set(Home{})
	return nil
}

// OpenCollection shows the listing of collection id.
func (m *Machine) OpenCollection(id catalog.CollectionID) error {
	if _, ok := m.catalog.Collection(id); !ok {
		return m.violation("open_collection", fmt.Errorf("%w: collection %s", catalog.ErrLookupMiss, id))
	}
	m.set(ShowCollection{ID: id})
	return nil
}

// OpenItem shows the detail card of key.
func (m *Machine) OpenItem(key catalog.Key) error {
	if _, _, ok := m.catalog.Item(key); !ok {
		return m.violation("open_item", fmt.Errorf("%w: key %q", catalog.ErrLookupMiss, key))
	}
	m.set(ShowItem{Key: key})
	return nil
}

// OpenRandomItem shows an item drawn uniformly from the whole catalog.
func (m *Machine) OpenRandomItem() error {
	key := m.keys[m.rng.IntN(len(m.keys))]
	m.set(ShowItem{Key: key})
	return nil
}

// Next moves to the following item of the same collection, wrapping from
// its last item to its first.
func (m *Machine) Next() error {
	return m.step("next", catalog.Collection.Next)
}

// Previous moves to the preceding item of the same collection, wrapping
// from its first item to its last.
func (m *Machine) Previous() error {
	return m.step("previous", catalog.Collection.Prev)
}

func (m *Machine) step(op string, move func(catalog.Collection, catalog.Key) (catalog.Key, bool)) error {
	cur, ok := m.state.(ShowItem)
	if !ok {
		return m.violation(op, ErrNotShowingItem)
	}
	owner, ok := m.catalog.Owner(cur.Key)
	if !ok {
		return m.violation(op, fmt.Errorf("%w: key %q", catalog.ErrLookupMiss, cur.Key))
	}
	coll, _ := m.catalog.Collection(owner)
	next, ok := move(coll, cur.Key)
	if !ok {
		return m.violation(op, fmt.Errorf("%w: key %q", catalog.ErrLookupMiss, cur.Key))
	}
	m.set(ShowItem{Key: next})
	return nil
}

func (m *Machine) set(to State) {
	from := m.state
	m.state = to
	for _, fn := range m.observers {
		fn(from, to)
	}
}

func (m *Machine) violation(op string, err error) error {
	return &ContractError{Op: op, State: m.state, Err: err}
}
