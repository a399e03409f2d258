package internal

// Rect is an axis-aligned rectangle in host screen pixels, anchored at its
// top-left corner.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Size is a measured width and height.
type Size struct {
	W float32
	H float32
}

// Font names a host font and its pixel size.
type Font struct {
	Name string
	Size int
}
