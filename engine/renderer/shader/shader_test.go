package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleSource = `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_main(model: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.color = model.color;
    out.clip_position = vec4<f32>(model.position, 1.0);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

const proceduralSource = `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) in_vertex_index: u32) -> VertexOutput {
    var out: VertexOutput;
    let x = f32(1 - i32(in_vertex_index)) * 0.5;
    let y = f32(i32(in_vertex_index & 1u) * 2 - 1) * 0.5;
    out.clip_position = vec4<f32>(x, y, 0.0, 1.0);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 0.2, 0.2, 1.0);
}
`

func TestVertexShaderReflection(t *testing.T) {
	s := NewShaderFromSource("triangle_vert", ShaderTypeVertex, triangleSource)

	assert.Equal(t, "triangle_vert", s.Key())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())

	// Only VertexInput is a vertex input struct; VertexOutput carries a
	// @builtin(position) field and must not produce a layout.
	require.Len(t, s.VertexLayouts(), 1)

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

func TestFragmentShaderEntryPoint(t *testing.T) {
	s := NewShaderFromSource("triangle_frag", ShaderTypeFragment, triangleSource)

	assert.Equal(t, "fs_main", s.EntryPoint())
	// Fragment shaders never reflect vertex layouts.
	assert.Empty(t, s.VertexLayouts())
}

func TestProceduralShaderHasNoVertexLayouts(t *testing.T) {
	s := NewShaderFromSource("procedural_vert", ShaderTypeVertex, proceduralSource)

	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Empty(t, s.VertexLayouts())
	assert.Nil(t, s.VertexLayout(0))
}

func TestShaderModuleDescriptor(t *testing.T) {
	s := NewShaderFromSource("triangle_vert", ShaderTypeVertex, triangleSource)

	m := s.Module()
	require.NotNil(t, m)
	assert.Equal(t, "triangle_vert", m.Label)
	require.NotNil(t, m.WGSLDescriptor)
	assert.Equal(t, triangleSource, m.WGSLDescriptor.Code)
}

func TestNewShaderReadsFromFile(t *testing.T) {
	s := NewShader("triangle_vert", ShaderTypeVertex, "../../../assets/shaders/triangle.wgsl")

	assert.Equal(t, "vs_main", s.EntryPoint())
	require.Len(t, s.VertexLayouts(), 1)
	assert.Equal(t, uint64(24), s.VertexLayout(0)[0].ArrayStride)
}

func TestMissingEntryPointIsEmpty(t *testing.T) {
	vertexOnly := `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0);
}
`
	s := NewShaderFromSource("vertex_only", ShaderTypeFragment, vertexOnly)
	assert.Equal(t, "", s.EntryPoint())
}

func TestCommentedOutStructsAreIgnored(t *testing.T) {
	source := `
// struct VertexInput {
//     @location(0) ignored: vec3<f32>,
// };

/* struct AlsoIgnored {
    @location(0) nope: vec2<f32>,
}; /* nested block comment */ still inside */

struct VertexInput {
    @location(0) position: vec2<f32>,
};

@vertex
fn vs_main(model: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(model.position, 0.0, 1.0);
}
`
	s := NewShaderFromSource("commented", ShaderTypeVertex, source)

	require.Len(t, s.VertexLayouts(), 1)
	layout := s.VertexLayout(0)[0]
	assert.Equal(t, uint64(8), layout.ArrayStride)
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[0].Format)
}

func TestShorthandVectorTypes(t *testing.T) {
	source := `
struct VertexInput {
    @location(0) position: vec3f,
    @location(1) uv: vec2f,
    @location(2) weight: f32,
};

@vertex
fn vs_main(model: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(model.position, 1.0);
}
`
	s := NewShaderFromSource("shorthand", ShaderTypeVertex, source)

	layout := s.VertexLayout(0)[0]
	assert.Equal(t, uint64(24), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[1].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32, layout.Attributes[2].Format)
	assert.Equal(t, uint64(20), layout.Attributes[2].Offset)
}

func TestEmptySourcePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShaderFromSource("empty", ShaderTypeVertex, "")
	})
}
