package block

// Kind distinguishes solid blocks from the two transparent states.
type Kind uint8

const (
	// Empty is confirmed void space.
	Empty Kind = iota
	// Filled is a solid, textured block.
	Filled
	// NotGenerated marks a lookup that crossed into a chunk that does not
	// exist. It never appears as the stored state of a generated chunk.
	NotGenerated
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case NotGenerated:
		return "not_generated"
	default:
		return "unknown"
	}
}

// Tile indexes a sub-rectangle in the texture atlas.
type Tile uint16

// Block is the state of one voxel. Tile is meaningful only for Filled blocks.
type Block struct {
	Kind Kind
	Tile Tile
}

var (
	// Air is the default block and the value returned for reads outside
	// any generated chunk.
	Air = Block{Kind: Empty}
	// Unknown is what the neighbour resolver reports for a missing chunk.
	Unknown = Block{Kind: NotGenerated}
)

// Solid returns a Filled block textured with tile.
func Solid(tile Tile) Block {
	return Block{Kind: Filled, Tile: tile}
}

// Transparent reports whether faces bordering this block should be drawn.
// Empty and NotGenerated are both transparent.
func (b Block) Transparent() bool {
	return b.Kind != Filled
}

// TextureRect looks up the atlas rectangle for b. ok is false for anything
// other than a Filled block.
func (b Block) TextureRect(atlas Atlas) (rect AtlasRect, ok bool) {
	if b.Kind != Filled {
		return AtlasRect{}, false
	}
	return atlas.Rect(b.Tile), true
}
