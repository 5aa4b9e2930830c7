// Package catalog holds the immutable registry of wonders and the two
// collections they belong to.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLookupMiss is returned when a key or collection id is not in the catalog.
	ErrLookupMiss = errors.New("catalog: lookup miss")

	// ErrDuplicateKey is returned when a key appears more than once.
	ErrDuplicateKey = errors.New("catalog: duplicate key")

	// ErrEmptyCollection is returned when a collection has no items.
	ErrEmptyCollection = errors.New("catalog: empty collection")
)

// Key identifies an item. Keys are unique across the whole catalog.
type Key string

// CollectionID identifies one of the fixed collections.
type CollectionID int

const (
	Ancient CollectionID = iota
	Modern
)

func (id CollectionID) String() string {
	switch id {
	case Ancient:
		return "ancient"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("collection(%d)", int(id))
	}
}

// ParseCollectionID converts a name ("ancient", "modern") to a CollectionID.
func ParseCollectionID(s string) (CollectionID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ancient":
		return Ancient, nil
	case "modern":
		return Modern, nil
	}
	return 0, fmt.Errorf("%w: collection %q", ErrLookupMiss, s)
}

// Item is one wonder. Name, Year and Location are message IDs resolved by the
// view layer; Image is an opaque image reference.
type Item struct {
	Key      Key
	Name     string
	Year     string
	Location string
	Image    string
}

// Collection is an ordered, read-only group of items.
type Collection struct {
	ID    CollectionID
	Name  string // message ID of the display name
	items []Item
	index map[Key]int
}

// NewCollection builds a collection keeping items in the given order.
func NewCollection(id CollectionID, name string, items ...Item) (Collection, error) {
	if len(items) == 0 {
		return Collection{}, fmt.Errorf("%w: %s", ErrEmptyCollection, id)
	}
	c := Collection{
		ID:    id,
		Name:  name,
		items: append([]Item(nil), items...),
		index: make(map[Key]int, len(items)),
	}
	for i, it := range c.items {
		if _, dup := c.index[it.Key]; dup {
			return Collection{}, fmt.Errorf("%w: %q in %s", ErrDuplicateKey, it.Key, id)
		}
		c.index[it.Key] = i
	}
	return c, nil
}

// Item returns the item stored under key.
func (c Collection) Item(key Key) (Item, bool) {
	i, ok := c.index[key]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the items in insertion order.
func (c Collection) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items.
func (c Collection) Len() int { return len(c.items) }

// Contains reports whether key belongs to the collection.
func (c Collection) Contains(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// IndexOf returns the position of key, or -1.
func (c Collection) IndexOf(key Key) int {
	i, ok := c.index[key]
	if !ok {
		return -1
	}
	return i
}

// First returns the first item in the collection.
func (c Collection) First() Item { return c.items[0] }

// Last returns the last item in the collection.
func (c Collection) Last() Item { return c.items[len(c.items)-1] }

// Next returns the key following key, wrapping from the last item to the first.
func (c Collection) Next(key Key) (Key, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.items[(i+1)%len(c.items)].Key, true
}

// Prev returns the key preceding key, wrapping from the first item to the last.
func (c Collection) Prev(key Key) (Key, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.items[(i-1+len(c.items))%len(c.items)].Key, true
}

// Catalog is the immutable set of collections. It is safe to share.
type Catalog struct {
	collections []Collection
	byID        map[CollectionID]int
	owner       map[Key]CollectionID
	keys        []Key
}

// New validates and assembles a catalog. Keys must be unique across all
// collections and each collection id may appear once.
func New(collections ...Collection) (*Catalog, error) {
	cat := &Catalog{
		collections: make([]Collection, 0, len(collections)),
		byID:        make(map[CollectionID]int, len(collections)),
		owner:       make(map[Key]CollectionID),
	}
	for _, c := range collections {
		if c.Len() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCollection, c.ID)
		}
		if _, dup := cat.byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: collection %s registered twice", c.ID)
		}
		for _, it := range c.items {
			if other, dup := cat.owner[it.Key]; dup {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateKey, it.Key, other, c.ID)
			}
			cat.owner[it.Key] = c.ID
			cat.keys = append(cat.keys, it.Key)
		}
		cat.byID[c.ID] = len(cat.collections)
		cat.collections = append(cat.collections, c)
	}
	return cat, nil
}

// Collection returns the collection with the given id.
func (c *Catalog) Collection(id CollectionID) (Collection, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Collection{}, false
	}
	return c.collections[i], true
}

// Collections returns all collections in registration order.
func (c *Catalog) Collections() []Collection {
	return append([]Collection(nil), c.collections...)
}

// Item looks key up across all collections and reports its owner.
func (c *Catalog) Item(key Key) (Item, CollectionID, bool) {
	id, ok := c.owner[key]
	if !ok {
		return Item{}, 0, false
	}
	coll, _ := c.Collection(id)
	it, _ := coll.Item(key)
	return it, id, true
}

// Owner returns the id of the collection holding key.
func (c *Catalog) Owner(key Key) (CollectionID, bool) {
	id, ok := c.owner[key]
	return id, ok
}

// Keys returns every key in catalog order.
func (c *Catalog) Keys() []Key {
	return append([]Key(nil), c.keys...)
}

// Len returns the total number of items.
func (c *Catalog) Len() int { return len(c.keys) }
