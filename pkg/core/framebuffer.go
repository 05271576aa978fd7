package core

// Framebuffer is a row-major grid of colors. Row 0 is the top of the image.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer allocates a framebuffer filled with transparent black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Index returns the slot of pixel (x, y)
func (fb *Framebuffer) Index(x, y int) int {
	return y*fb.Width + x
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) Color {
	return fb.Pixels[fb.Index(x, y)]
}

// Set writes the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c Color) {
	fb.Pixels[fb.Index(x, y)] = c
}
