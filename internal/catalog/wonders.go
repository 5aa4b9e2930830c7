package catalog

import "sync"

// wonder builds an item whose message IDs and image reference share a stem.
func wonder(key Key, stem string) Item {
	return Item{
		Key:      key,
		Name:     stem + "_text",
		Year:     stem + "_year",
		Location: stem + "_location",
		Image:    stem,
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog: the seven wonders of the ancient
// world (keys 1-7) and the new seven wonders (keys 8-14).
func Default() *Catalog {
	defaultOnce.Do(func() {
		ancient, err := NewCollection(Ancient, "wonders_of_the_ancient_world_text",
			wonder("1", "great_pyramid_of_giza"),
			wonder("2", "hanging_gardens_of_babylon"),
			wonder("3", "statue_of_zeus_at_olympia"),
			wonder("4", "temple_of_artemis_at_ephesus"),
			wonder("5", "mausoleum_at_halicarnassus"),
			wonder("6", "colossus_of_rhodes"),
			wonder("7", "lighthouse_of_alexandria"),
		)
		if err != nil {
			panic(err)
		}
		modern, err := NewCollection(Modern, "new_wonders_of_the_world_text",
			wonder("8", "great_wall_of_china"),
			wonder("9", "petra"),
			wonder("10", "colosseum"),
			wonder("11", "chichen_itza"),
			wonder("12", "machu_picchu"),
			wonder("13", "taj_mahal"),
			wonder("14", "christ_the_redeemer"),
		)
		if err != nil {
			panic(err)
		}
		cat, err := New(ancient, modern)
		if err != nil {
			panic(err)
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}
