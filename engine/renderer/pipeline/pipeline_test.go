package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogiastawan/xapp/engine/renderer/shader"
)

const vertexSource = `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
};

@vertex
fn vs_main(model: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(model.position, 1.0);
}
`

const fragmentSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("triangle")

	assert.Equal(t, "triangle", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Nil(t, p.RenderPipeline())

	// Replace blending: source fully overwrites the target.
	bs := p.BlendState()
	require.NotNil(t, bs)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, bs.Color.DstFactor)
	assert.Equal(t, wgpu.BlendOperationAdd, bs.Color.Operation)
	assert.Equal(t, wgpu.BlendFactorOne, bs.Alpha.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, bs.Alpha.DstFactor)
}

func TestNewPipelineOptions(t *testing.T) {
	vs := shader.NewShaderFromSource("vert", shader.ShaderTypeVertex, vertexSource)
	fs := shader.NewShaderFromSource("frag", shader.ShaderTypeFragment, fragmentSource)

	p := NewPipeline("custom",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithCullMode(wgpu.CullModeNone),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}

func TestShaderLookupByType(t *testing.T) {
	vs := shader.NewShaderFromSource("vert", shader.ShaderTypeVertex, vertexSource)
	p := NewPipeline("lookup", WithVertexShader(vs))

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Nil(t, p.Shader(shader.ShaderTypeFragment))
	assert.Nil(t, p.Shader(shader.ShaderType(99)))
}

func TestWithBlendState(t *testing.T) {
	bs := &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}
	p := NewPipeline("blended", WithBlendEnabled(true), WithBlendState(bs))

	assert.True(t, p.BlendEnabled())
	assert.Same(t, bs, p.BlendState())
}
