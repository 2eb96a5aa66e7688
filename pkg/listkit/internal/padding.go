package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// HorizontalPadding creates a Padding with only left and right insets.
func HorizontalPadding(value int) Padding {
	return Padding{Right: value, Left: value}
}

// Horizontal returns the combined left and right inset.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom inset.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}
