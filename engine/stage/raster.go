package stage

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/yogiastawan/xapp/engine/mesh"
)

// rasterizer is the implementation of the Rasterizer interface.
type rasterizer struct {
	// backFaceCulling mirrors the fixed-function pipeline state: counter-clockwise
	// front faces, back faces discarded.
	backFaceCulling bool

	// workers is the number of goroutines rasterizing pixel rows in parallel.
	workers int

	// rowPool manages a bounded set of reusable goroutines for rasterizing
	// row bands. Workers persist across draws, avoiding per-draw goroutine
	// spawn/teardown overhead.
	rowPool worker.DynamicWorkerPool

	// nextTaskID is a monotonically increasing ID for pool task submission.
	nextTaskID int
}

// Rasterizer draws triangles into a Framebuffer using the same semantics the
// GPU pipeline is configured with: counter-clockwise front faces, back-face
// culling, pixel-center sampling, and perspective-less barycentric attribute
// interpolation (clip-space w is always 1 here). Its purpose is validating
// the vertex/fragment stage contract end to end without a GPU.
type Rasterizer interface {
	// DrawTriangles runs the buffered path: consecutive groups of three vertices
	// are fed through TransformVertex, rasterized, and shaded with ShadeFragment.
	// A trailing group of fewer than three vertices is ignored.
	//
	// Parameters:
	//   - fb: the framebuffer to draw into
	//   - vertices: the vertex data, consumed three at a time
	DrawTriangles(fb *Framebuffer, vertices []mesh.GPUVertex)

	// DrawProcedural runs the bufferless path: vertex indices 0..vertexCount-1
	// are fed through ProceduralVertex in groups of three and shaded with
	// ProceduralFragment.
	//
	// Parameters:
	//   - fb: the framebuffer to draw into
	//   - vertexCount: the number of vertex invocations to issue
	DrawProcedural(fb *Framebuffer, vertexCount uint32)

	// RasterizeTriangle fills a single triangle given pre-transformed vertex
	// outputs, invoking shade once per covered pixel with the barycentric
	// interpolation of the three vertex records.
	//
	// Parameters:
	//   - fb: the framebuffer to draw into
	//   - v0, v1, v2: the triangle's vertex outputs in clip space
	//   - shade: the fragment stage to invoke per covered pixel
	RasterizeTriangle(fb *Framebuffer, v0, v1, v2 VertexOutput, shade func(VertexOutput) [4]float32)
}

var _ Rasterizer = &rasterizer{}

// NewRasterizer creates a Rasterizer with the given options. Defaults match
// the GPU triangle pipeline: back-face culling on, row parallelism across
// runtime.NumCPU()-1 workers.
//
// Parameters:
//   - opts: a variadic list of RasterizerBuilderOption functions to configure the rasterizer
//
// Returns:
//   - Rasterizer: a new Rasterizer instance
func NewRasterizer(opts ...RasterizerBuilderOption) Rasterizer {
	r := &rasterizer{
		backFaceCulling: true,
		workers:         defaultRasterWorkers(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// Row bands are capped at a small multiple of the worker count, so a
	// modest queue never fills.
	r.rowPool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

func (r *rasterizer) DrawTriangles(fb *Framebuffer, vertices []mesh.GPUVertex) {
	for i := 0; i+2 < len(vertices); i += 3 {
		r.RasterizeTriangle(
			fb,
			TransformVertex(vertices[i]),
			TransformVertex(vertices[i+1]),
			TransformVertex(vertices[i+2]),
			ShadeFragment,
		)
	}
}

func (r *rasterizer) DrawProcedural(fb *Framebuffer, vertexCount uint32) {
	for i := uint32(0); i+2 < vertexCount; i += 3 {
		r.RasterizeTriangle(
			fb,
			ProceduralVertex(i),
			ProceduralVertex(i+1),
			ProceduralVertex(i+2),
			ProceduralFragment,
		)
	}
}

func (r *rasterizer) RasterizeTriangle(fb *Framebuffer, v0, v1, v2 VertexOutput, shade func(VertexOutput) [4]float32) {
	// Twice the signed area in clip space; positive for counter-clockwise
	// winding. Degenerate triangles cover no pixel centers.
	area := edgeFunction(v0.ClipPosition, v1.ClipPosition, v2.ClipPosition)
	if area == 0 {
		return
	}
	if area < 0 {
		if r.backFaceCulling {
			return
		}
		// Re-wind clockwise triangles so the inside test below holds.
		v1, v2 = v2, v1
		area = -area
	}

	width := float32(fb.Width())
	height := float32(fb.Height())

	minX := math32.Max(math32.Min(v0.ClipPosition[0], math32.Min(v1.ClipPosition[0], v2.ClipPosition[0])), -1)
	maxX := math32.Min(math32.Max(v0.ClipPosition[0], math32.Max(v1.ClipPosition[0], v2.ClipPosition[0])), 1)
	minY := math32.Max(math32.Min(v0.ClipPosition[1], math32.Min(v1.ClipPosition[1], v2.ClipPosition[1])), -1)
	maxY := math32.Min(math32.Max(v0.ClipPosition[1], math32.Max(v1.ClipPosition[1], v2.ClipPosition[1])), 1)

	// Pixel-space bounding box. Clip +Y is up, pixel row 0 is the top, so the
	// row range comes from the flipped Y extent.
	x0 := clampInt(int(math32.Floor((minX*0.5+0.5)*width)), 0, fb.Width()-1)
	x1 := clampInt(int(math32.Ceil((maxX*0.5+0.5)*width)), 0, fb.Width()-1)
	y0 := clampInt(int(math32.Floor((0.5-maxY*0.5)*height)), 0, fb.Height()-1)
	y1 := clampInt(int(math32.Ceil((0.5-minY*0.5)*height)), 0, fb.Height()-1)

	rows := y1 - y0 + 1
	bands := min(rows, r.workers*2)
	if bands < 1 {
		bands = 1
	}
	rowsPerBand := (rows + bands - 1) / bands

	var wg sync.WaitGroup
	for band := 0; band < bands; band++ {
		bandY0 := y0 + band*rowsPerBand
		bandY1 := min(bandY0+rowsPerBand-1, y1)
		if bandY0 > y1 {
			break
		}

		wg.Add(1)
		r.nextTaskID++
		r.rowPool.SubmitTask(worker.Task{
			ID: r.nextTaskID,
			Do: func() (any, error) {
				defer wg.Done()
				for y := bandY0; y <= bandY1; y++ {
					r.rasterizeRow(fb, y, x0, x1, v0, v1, v2, area, shade)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// rasterizeRow fills the covered pixels of a single row. Rows are disjoint
// between bands so no synchronization is needed on the framebuffer.
func (r *rasterizer) rasterizeRow(fb *Framebuffer, y, x0, x1 int, v0, v1, v2 VertexOutput, area float32, shade func(VertexOutput) [4]float32) {
	width := float32(fb.Width())
	height := float32(fb.Height())

	// Sample at the pixel center mapped back into clip space.
	sy := 1 - (float32(y)+0.5)/height*2

	for x := x0; x <= x1; x++ {
		sx := (float32(x)+0.5)/width*2 - 1
		p := [4]float32{sx, sy, 0, 1}

		w0 := edgeFunction(v1.ClipPosition, v2.ClipPosition, p)
		w1 := edgeFunction(v2.ClipPosition, v0.ClipPosition, p)
		w2 := edgeFunction(v0.ClipPosition, v1.ClipPosition, p)
		if w0 < 0 || w1 < 0 || w2 < 0 {
			continue
		}

		w0 /= area
		w1 /= area
		w2 /= area

		var interpolated VertexOutput
		for i := range 4 {
			interpolated.ClipPosition[i] = w0*v0.ClipPosition[i] + w1*v1.ClipPosition[i] + w2*v2.ClipPosition[i]
		}
		for i := range 3 {
			interpolated.Color[i] = w0*v0.Color[i] + w1*v1.Color[i] + w2*v2.Color[i]
		}

		fb.set(x, y, shade(interpolated))
	}
}

// edgeFunction returns twice the signed area of triangle (a, b, p) in the XY
// plane. Positive when p lies to the left of the directed edge a→b.
func edgeFunction(a, b, p [4]float32) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
