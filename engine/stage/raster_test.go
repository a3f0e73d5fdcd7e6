package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogiastawan/xapp/engine/mesh"
)

var clearColor = [4]float32{0.1, 0.2, 0.3, 1.0}

// renderTriangle draws the default demo triangle into a fresh framebuffer.
func renderTriangle(t *testing.T, size int, opts ...RasterizerBuilderOption) *Framebuffer {
	t.Helper()
	fb := NewFramebuffer(size, size)
	fb.Clear(clearColor)
	NewRasterizer(opts...).DrawTriangles(fb, mesh.TriangleVertices())
	return fb
}

// pixelFor maps a clip-space point to the framebuffer pixel containing it.
func pixelFor(fb *Framebuffer, x, y float32) (int, int) {
	px := int((x*0.5 + 0.5) * float32(fb.Width()))
	py := int((0.5 - y*0.5) * float32(fb.Height()))
	return px, py
}

func TestCenterPixelBlendsAllThreeColors(t *testing.T) {
	fb := renderTriangle(t, 64)

	// At the triangle's centroid every barycentric weight is one third, so the
	// interpolated color is an even blend of red, green, and blue.
	px, py := pixelFor(fb, 0, -1.0/6.0)
	got := fb.At(px, py)

	third := float32(1.0 / 3.0)
	assert.InDelta(t, third, got[0], 0.05)
	assert.InDelta(t, third, got[1], 0.05)
	assert.InDelta(t, third, got[2], 0.05)
	assert.Equal(t, float32(1.0), got[3])
}

func TestCornerColorsDominateNearVertices(t *testing.T) {
	fb := renderTriangle(t, 64)

	cases := []struct {
		name    string
		x, y    float32
		channel int
	}{
		{"red apex", 0, 0.45, 0},
		{"green bottom-left", -0.45, -0.45, 1},
		{"blue bottom-right", 0.45, -0.45, 2},
	}

	for _, tc := range cases {
		px, py := pixelFor(fb, tc.x, tc.y)
		got := fb.At(px, py)
		require.Equal(t, float32(1.0), got[3], "%s: covered pixels are opaque", tc.name)
		assert.Greater(t, got[tc.channel], float32(0.8), "%s: dominant channel", tc.name)
		for c := range 3 {
			if c == tc.channel {
				continue
			}
			assert.Less(t, got[c], float32(0.15), "%s: channel %d", tc.name, c)
		}
	}
}

func TestBackgroundIsUntouched(t *testing.T) {
	fb := renderTriangle(t, 64)

	// Framebuffer corners lie well outside the triangle.
	assert.Equal(t, clearColor, fb.At(0, 0))
	assert.Equal(t, clearColor, fb.At(63, 0))
	assert.Equal(t, clearColor, fb.At(0, 63))
	assert.Equal(t, clearColor, fb.At(63, 63))
}

func TestRenderingIsIdempotent(t *testing.T) {
	a := renderTriangle(t, 64)
	b := renderTriangle(t, 64)

	for y := range 64 {
		for x := range 64 {
			require.Equal(t, a.At(x, y), b.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestBackFaceCulling(t *testing.T) {
	verts := mesh.TriangleVertices()
	// Reverse the winding to clockwise.
	verts[1], verts[2] = verts[2], verts[1]

	fb := NewFramebuffer(64, 64)
	fb.Clear(clearColor)
	NewRasterizer().DrawTriangles(fb, verts)

	px, py := pixelFor(fb, 0, -1.0/6.0)
	assert.Equal(t, clearColor, fb.At(px, py), "clockwise triangle is culled")

	// With culling disabled the same triangle rasterizes.
	fb.Clear(clearColor)
	NewRasterizer(WithBackFaceCulling(false)).DrawTriangles(fb, verts)
	got := fb.At(px, py)
	assert.NotEqual(t, clearColor, got)
	assert.Equal(t, float32(1.0), got[3])
}

func TestDrawProceduralIsConstantTeal(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	fb.Clear(clearColor)
	NewRasterizer().DrawProcedural(fb, 3)

	teal := [4]float32{0.0, 0.2, 0.2, 1.0}

	// The procedural triangle covers the same region as the buffered one;
	// every covered pixel is the same constant color.
	px, py := pixelFor(fb, 0, -1.0/6.0)
	assert.Equal(t, teal, fb.At(px, py))

	px, py = pixelFor(fb, 0, 0.45)
	assert.Equal(t, teal, fb.At(px, py))

	assert.Equal(t, clearColor, fb.At(0, 0))
}

func TestDegenerateTriangleDrawsNothing(t *testing.T) {
	verts := []mesh.GPUVertex{
		{Position: [3]float32{0, 0, 0}, Color: [3]float32{1, 0, 0}},
		{Position: [3]float32{0.5, 0.5, 0}, Color: [3]float32{0, 1, 0}},
		{Position: [3]float32{1, 1, 0}, Color: [3]float32{0, 0, 1}},
	}

	fb := NewFramebuffer(32, 32)
	fb.Clear(clearColor)
	NewRasterizer().DrawTriangles(fb, verts)

	for y := range 32 {
		for x := range 32 {
			require.Equal(t, clearColor, fb.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestIncompleteTriangleGroupIsIgnored(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Clear(clearColor)

	// Two vertices cannot form a triangle; nothing is drawn.
	NewRasterizer().DrawTriangles(fb, mesh.TriangleVertices()[:2])

	px, py := pixelFor(fb, 0, -1.0/6.0)
	assert.Equal(t, clearColor, fb.At(px, py))
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(clearColor)

	assert.Equal(t, [4]float32{}, fb.At(-1, 0))
	assert.Equal(t, [4]float32{}, fb.At(0, 4))
	assert.Equal(t, 4, fb.Width())
	assert.Equal(t, 4, fb.Height())

	assert.Panics(t, func() { NewFramebuffer(0, 4) })
}
