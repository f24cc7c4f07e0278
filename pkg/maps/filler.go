package maps

import "github.com/liamwhite/binel/pkg/binel"

// Filler is an alternate, now mostly-unused way of describing a room
// filled entirely with one tile and no other assets. Kept as a raw
// passthrough since it has no effect on the parts of a Map most
// consumers care about.
type Filler struct {
	Element *binel.Element
}

func (Filler) ElementName() string { return "Filler" }

// Meta is an Everest extension storing a Map's display name and icon. It
// has no stable documented schema, so it is kept as a raw passthrough.
type Meta struct {
	Element *binel.Element
}
