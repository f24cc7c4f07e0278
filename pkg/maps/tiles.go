package maps

// BGTiles names the tileset painted behind a Level's solid background
// tiles.
type BGTiles struct {
	// Tileset is the tileset to paint with. Observed to always be
	// "Scenery" in practice, but nothing in the format enforces that.
	Tileset string `binel:"tileset"`
}

func (BGTiles) ElementName() string { return "bgtiles" }

// FGTiles names the tileset painted behind a Level's solid foreground
// tiles.
type FGTiles struct {
	Tileset string `binel:"tileset"`
}

func (FGTiles) ElementName() string { return "fgtiles" }
