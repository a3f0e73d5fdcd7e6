// Package stage holds the CPU expression of the triangle shader pair: a vertex
// stage that lifts buffered positions into clip space and forwards color, and a
// fragment stage that emits the interpolated color fully opaque. The WGSL
// sources under assets/shaders express the same stages for the GPU path; the
// functions here are the reference semantics the software rasterizer runs.
//
// Every function in this package is total and stateless: any input produces a
// defined output, no global state is read or written, and repeated invocation
// with the same input yields the same result.
package stage

import (
	"github.com/yogiastawan/xapp/engine/mesh"
)

// VertexOutput is the per-vertex record handed from the vertex stage to the
// rasterizer. ClipPosition is a homogeneous clip-space coordinate; Color is
// interpolated across the triangle before reaching the fragment stage.
type VertexOutput struct {
	ClipPosition [4]float32
	Color        [3]float32
}

// TransformVertex runs the vertex stage for a buffered vertex: the 3D position
// is lifted to clip space with w=1 (no projection, no perspective division
// effect), and the color attribute passes through untouched.
//
// Parameters:
//   - v: the input vertex with position and color attributes
//
// Returns:
//   - VertexOutput: the clip-space position and forwarded color
func TransformVertex(v mesh.GPUVertex) VertexOutput {
	return VertexOutput{
		ClipPosition: [4]float32{v.Position[0], v.Position[1], v.Position[2], 1.0},
		Color:        v.Color,
	}
}

// ShadeFragment runs the fragment stage: the interpolated color becomes the
// RGB of the output sample and alpha is always 1.0 (fully opaque), regardless
// of the incoming values.
//
// Parameters:
//   - in: the interpolated vertex output at this fragment
//
// Returns:
//   - [4]float32: the RGBA output color with alpha fixed at 1.0
func ShadeFragment(in VertexOutput) [4]float32 {
	return [4]float32{in.Color[0], in.Color[1], in.Color[2], 1.0}
}

// ProceduralVertex runs the bufferless vertex stage: the clip-space position is
// derived from the vertex index alone, no vertex buffer involved. Indices 0, 1,
// and 2 yield (0.5, -0.5), (0, 0.5), and (-0.5, -0.5) with z=0 and w=1.
// The color carried on the output is the constant teal the matching fragment
// stage emits.
//
// Parameters:
//   - index: the vertex index builtin
//
// Returns:
//   - VertexOutput: the derived clip-space position
func ProceduralVertex(index uint32) VertexOutput {
	x := float32(1-int32(index)) * 0.5
	y := float32(int32(index&1)*2-1) * 0.5
	return VertexOutput{
		ClipPosition: [4]float32{x, y, 0.0, 1.0},
		Color:        [3]float32{0.0, 0.2, 0.2},
	}
}

// ProceduralFragment runs the bufferless fragment stage: every fragment is the
// same constant teal, fully opaque. The input is accepted for signature
// symmetry with ShadeFragment but does not influence the output.
//
// Parameters:
//   - in: the interpolated vertex output at this fragment (ignored)
//
// Returns:
//   - [4]float32: the constant RGBA color (0, 0.2, 0.2, 1.0)
func ProceduralFragment(in VertexOutput) [4]float32 {
	return [4]float32{0.0, 0.2, 0.2, 1.0}
}
