package core

// Color is the role of a screen cell. Renderers map roles to terminal colours.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorText           // HUD and body text
	ColorTitle          // Menu title
	ColorAlert          // "Game Over"
	ColorDim            // Hints, help line, overlay shading
	ColorPlayer         // Bird
	ColorShadow         // Bird shadow
	ColorPipe           // Pipe body
	ColorPipeEdge       // Pipe border
	ColorStar           // Stars, both variants
	ColorBasket         // Catcher basket
	ColorButton         // Menu button frame
	ColorGround         // Floor line
)
