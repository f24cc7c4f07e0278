package maps

// Solids is a Level's solid foreground tile grid, stored as one long
// string of tile-type characters, one row per map line.
type Solids struct {
	Contents string `binel:"innerText"`
}

// BGSolids is a Level's solid background tile grid, in the same encoding
// as Solids.
type BGSolids struct {
	Contents string `binel:"innerText"`
}

func (BGSolids) ElementName() string { return "bg" }
