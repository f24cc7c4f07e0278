package maps

// Map is a single chapter (an "Area" in the game's own code; renamed here
// to avoid confusion with Go's map type).
type Map struct {
	Style  Stylegrounds
	Levels Levels
	Filler Filler
	Meta   *Meta
}

func (Map) ElementName() string { return "Map" }
