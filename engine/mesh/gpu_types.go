package mesh

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for
// colored-triangle pipelines. Matches GPUVertex layout exactly (24 bytes, tightly packed).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single colored vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource):
// shader location 0 = Position (Float32x3 at offset 0), shader location 1 = Color
// (Float32x3 at offset 12). Size: 24 bytes, no padding.
//
// Position is authored directly in normalized device coordinates — no camera or
// projection is applied downstream, the vertex stage lifts it straight into clip
// space with w = 1. Color channels are normalized [0, 1].
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in NDC (12 bytes)
	Color    [3]float32 // offset 12: per-vertex RGB color (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[2]))
	return buf
}

// TriangleVertices returns the three vertices of the default demo triangle:
// an apex-up triangle with pure red, green, and blue corners, wound
// counter-clockwise so it survives back-face culling.
//
// Returns:
//   - []GPUVertex: the three triangle vertices in draw order
func TriangleVertices() []GPUVertex {
	return []GPUVertex{
		{Position: [3]float32{0.0, 0.5, 0.0}, Color: [3]float32{1.0, 0.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, Color: [3]float32{0.0, 1.0, 0.0}},
		{Position: [3]float32{0.5, -0.5, 0.0}, Color: [3]float32{0.0, 0.0, 1.0}},
	}
}
