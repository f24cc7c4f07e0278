package maps

import "github.com/liamwhite/binel/pkg/binel"

// Level is a single room in a Map. Most fields are self-explanatory from
// the in-game editor; the handful that aren't are noted below.
type Level struct {
	Name   string `binel:"name"`
	X      int32  `binel:"x"`
	Y      int32  `binel:"y"`
	Width  int32  `binel:"width"`
	Height int32  `binel:"height"`

	MusicLayer1 bool `binel:"musicLayer1"`
	MusicLayer2 bool `binel:"musicLayer2"`
	MusicLayer3 bool `binel:"musicLayer3"`
	MusicLayer4 bool `binel:"musicLayer4"`

	MusicProgress string `binel:"musicProgress"`
	Whisper       bool   `binel:"whisper"`
	Underwater    bool   `binel:"underwater"`

	// C's purpose is undocumented even in the upstream source.
	C int32 `binel:"c"`

	// AltMusic is, per the upstream source, believed to be the default
	// music used by Music triggers in this room. The wire key keeps its
	// Rust snake_case spelling rather than following the mixedCase
	// convention every other field uses.
	AltMusic string `binel:"alt_music"`

	// Space toggles alternate gravity; behavior may differ across game
	// versions.
	Space                 bool   `binel:"space"`
	WindPattern           string `binel:"windPattern"`
	DisableDownTransition bool   `binel:"disableDownTransition"`
	// Dark affects which lighting shaders apply to the room.
	Dark bool `binel:"dark"`

	// The following all derive their wire names from their own types, so
	// none of them carry a binel tag.
	FGDecals FGDecals
	BGDecals BGDecals
	FGTiles  FGTiles
	BGTiles  BGTiles
	Solids   Solids
	BG       BGSolids
	Entities Entities
	Triggers Triggers

	// ObjTiles is absent in files written by some older serializers. Its
	// wire name is derived from the ObjTiles type itself, not this field,
	// so no binel tag is given here.
	ObjTiles *ObjTiles

	// Invalid collects every child element that didn't match one of the
	// named fields above, so a room written by a newer format revision
	// round-trips without silently dropping data.
	Invalid []*binel.Element `binel:"invalid"`
}
