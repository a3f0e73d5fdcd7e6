package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogiastawan/xapp/engine/renderer/shader"
)

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, 24, v.Size())
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{0.0, 0.5, 0.0},
		Color:    [3]float32{1.0, 0.0, 0.0},
	}
	buf := v.Marshal()
	require.Len(t, buf, 24)

	assert.Equal(t, math.Float32bits(0.0), binary.LittleEndian.Uint32(buf[0:4]))
	assert.Equal(t, math.Float32bits(0.5), binary.LittleEndian.Uint32(buf[4:8]))
	assert.Equal(t, math.Float32bits(1.0), binary.LittleEndian.Uint32(buf[12:16]))
}

func TestTriangleVertices(t *testing.T) {
	verts := TriangleVertices()
	require.Len(t, verts, 3)

	assert.Equal(t, [3]float32{0.0, 0.5, 0.0}, verts[0].Position)
	assert.Equal(t, [3]float32{-0.5, -0.5, 0.0}, verts[1].Position)
	assert.Equal(t, [3]float32{0.5, -0.5, 0.0}, verts[2].Position)

	assert.Equal(t, [3]float32{1, 0, 0}, verts[0].Color)
	assert.Equal(t, [3]float32{0, 1, 0}, verts[1].Color)
	assert.Equal(t, [3]float32{0, 0, 1}, verts[2].Color)

	// The demo triangle must wind counter-clockwise to survive back-face
	// culling: twice the signed area is positive.
	a, b, c := verts[0].Position, verts[1].Position, verts[2].Position
	area := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	assert.Greater(t, area, float32(0))
}

// The embedded canonical VertexInput source must reflect to the exact buffer
// layout GPUVertex is marshaled with: two Float32x3 attributes at offsets 0 and
// 12, 24-byte stride.
func TestGPUVertexSourceReflectsLayout(t *testing.T) {
	s := shader.NewShaderFromSource("vertex_input", shader.ShaderTypeVertex, GPUVertexSource)

	layouts := s.VertexLayout(0)
	require.Len(t, layouts, 1)

	layout := layouts[0]
	assert.Equal(t, uint64(24), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 2)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}
