package block

// AtlasRect is a sub-rectangle of the texture atlas in normalised texture
// coordinates. (X, Y) is the lower-left corner.
type AtlasRect struct {
	X, Y          float32
	Width, Height float32
}

// Atlas resolves a tile to its rectangle in the texture atlas. Tiles an
// atlas does not know resolve to a non-empty rectangle, usually the whole
// texture.
type Atlas interface {
	Rect(tile Tile) AtlasRect
}

// UniformAtlas maps every tile to the same rectangle.
type UniformAtlas AtlasRect

func (u UniformAtlas) Rect(Tile) AtlasRect {
	return AtlasRect(u)
}

// FullTexture covers the whole texture.
var FullTexture = UniformAtlas{Width: 1, Height: 1}
