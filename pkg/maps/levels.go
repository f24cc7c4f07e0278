package maps

import "github.com/liamwhite/binel/pkg/binel"

// Levels holds every room in a Map. Stored as a subelement of Map for
// reasons lost to history.
type Levels struct {
	Rooms []Level `binel:"level"`
	// InvalidRooms collects children not named "level". A "level" child
	// that fails to decode as a Level makes FromElement return an error
	// instead.
	InvalidRooms []*binel.Element `binel:"invalidLevels"`
}
