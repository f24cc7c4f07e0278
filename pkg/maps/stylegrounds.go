// Package maps implements the Celeste map record set: the typed structs
// mapped onto BinEl trees via pkg/binel/bind, describing a single chapter
// (a Map), its rooms (Level), and the assets a room is built from.
package maps

import "github.com/liamwhite/binel/pkg/binel"

// Stylegrounds holds a Map's animated background and foreground layers.
type Stylegrounds struct {
	// Foregrounds and Backgrounds derive their wire names ("Foregrounds",
	// "Backgrounds") from their own types, not this field, so neither
	// carries a binel tag.
	Foregrounds Foregrounds
	Backgrounds Backgrounds
}

// ElementName overrides the derived "stylegrounds" with the wire name
// Celeste actually uses.
func (Stylegrounds) ElementName() string { return "Style" }

// Foregrounds is a newtype passthrough over the raw foreground
// styleground tree; these are not broken out into individual fields.
type Foregrounds struct {
	Element *binel.Element
}

func (Foregrounds) ElementName() string { return "Foregrounds" }

// Backgrounds is a newtype passthrough over the raw background
// styleground tree.
type Backgrounds struct {
	Element *binel.Element
}

func (Backgrounds) ElementName() string { return "Backgrounds" }
