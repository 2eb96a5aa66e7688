package constants

// Icon names understood by canvases that can draw icons.
// Hosts map them to their own glyphs or vector images.
type Icon string

const (
	IconCheck      Icon = "check"       // Marks a selected row in Multi mode
	IconArrowUp    Icon = "arrow-up"    // Scrollbar step-up button
	IconArrowDown  Icon = "arrow-down"  // Scrollbar step-down button
	IconScrollGrip Icon = "scroll-grip" // Scrollbar thumb grip
)

// Glyph fallbacks for text-only canvases.
const (
	CheckGlyph     = "✓"
	ArrowUpGlyph   = "▲"
	ArrowDownGlyph = "▼"
	ThumbGlyph     = "█"
	TrackGlyph     = "│"
)
