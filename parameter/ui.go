package parameter

// Entity glyphs by tag for the terminal renderer
const (
	GlyphObject    = '▪'
	GlyphFloor     = '·'
	GlyphWall      = '█'
	GlyphCube      = '■'
	GlyphSoundCube = '◆'
)

// StatusBarHeight is reserved at the bottom of the screen
const StatusBarHeight = 1

// FreeViewPanStep is the distance in world units WASD moves the free view per frame
const FreeViewPanStep = float32(0.5)

// CellAspect is the height/width ratio of a terminal cell; vertical world units per row scale by it
const CellAspect = float32(2.0)
