package maps

import "github.com/liamwhite/binel/pkg/binel"

// Entities holds the objects with associated game logic in a Level (the
// player spawn point, strawberries, springs, and the hundred-plus other
// entity kinds Celeste and its mods define). They are kept as raw
// elements rather than broken out into per-kind structs, since any
// consumer interested in a specific entity kind can inspect its
// attributes directly.
type Entities struct {
	EntityElements []*binel.Element `binel:"entities"`
}

// Triggers holds the code-bearing regions in a Level, kept raw for the
// same reason as Entities.
type Triggers struct {
	TriggerElements []*binel.Element `binel:"triggers"`
}
