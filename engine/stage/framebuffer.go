package stage

// Framebuffer is a CPU-side float32 RGBA render target. Pixels are stored
// row-major, four components per pixel, with row 0 at the top of the image
// (clip-space +Y maps to the top).
type Framebuffer struct {
	width  int
	height int
	pix    []float32
}

// NewFramebuffer creates a Framebuffer of the given dimensions with all pixels
// zeroed. Panics if either dimension is not positive.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - *Framebuffer: the new framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("framebuffer dimensions must be positive")
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Clear fills every pixel with the given RGBA color.
//
// Parameters:
//   - color: the RGBA color to fill with
func (f *Framebuffer) Clear(color [4]float32) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = color[0]
		f.pix[i+1] = color[1]
		f.pix[i+2] = color[2]
		f.pix[i+3] = color[3]
	}
}

// At returns the RGBA color of the pixel at (x, y). Out-of-bounds coordinates
// return a zero color.
//
// Parameters:
//   - x: pixel column, 0 at the left edge
//   - y: pixel row, 0 at the top edge
//
// Returns:
//   - [4]float32: the RGBA color at the pixel
func (f *Framebuffer) At(x, y int) [4]float32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return [4]float32{}
	}
	i := (y*f.width + x) * 4
	return [4]float32{f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]}
}

// set writes the RGBA color of the pixel at (x, y). Callers guarantee bounds.
func (f *Framebuffer) set(x, y int, color [4]float32) {
	i := (y*f.width + x) * 4
	f.pix[i] = color[0]
	f.pix[i+1] = color[1]
	f.pix[i+2] = color[2]
	f.pix[i+3] = color[3]
}
