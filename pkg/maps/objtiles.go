package maps

// ObjTiles holds a Level's object-tile grid, in the same row-per-line
// encoding as Solids. Some older map serializers omit this element
// entirely, which is why Level holds it as an *ObjTiles.
type ObjTiles struct {
	Tiles string `binel:"innerText"`
}
