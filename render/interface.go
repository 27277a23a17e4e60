package render

// Surface is the drawable target. Drawing coordinates are user space (layout pixels),
// mapped to backing-store pixels by the scale transform
type Surface interface {
	// Resize reallocates the backing store in device pixels
	Resize(width, height int)

	// Bounds returns backing store dimensions in device pixels
	Bounds() (width, height int)

	// SetScale sets the uniform user-to-device transform
	SetScale(s float64)

	// Clear resets every pixel to the surface backdrop
	Clear()

	// FillRect fills an axis-aligned rectangle with p
	FillRect(x, y, w, h float64, p Paint)

	// FillCircle fills a full circular arc
	FillCircle(cx, cy, r float64, c Color)

	// StrokeLine strokes a single segment of the given width
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Layer is implemented by scene components with visual output
type Layer interface {
	Render(f Frame, s Surface)
}

// VisibilityToggle is optionally implemented to skip a layer for a frame
type VisibilityToggle interface {
	IsVisible(f Frame) bool
}
