package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yogiastawan/xapp/engine/mesh"
)

func TestTransformVertexLiftsToClipSpace(t *testing.T) {
	v := mesh.GPUVertex{
		Position: [3]float32{0.25, -0.75, 0.5},
		Color:    [3]float32{0.1, 0.2, 0.3},
	}
	out := TransformVertex(v)

	assert.Equal(t, [4]float32{0.25, -0.75, 0.5, 1.0}, out.ClipPosition)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, out.Color)
}

func TestTransformVertexAlwaysHasUnitW(t *testing.T) {
	inputs := []mesh.GPUVertex{
		{},
		{Position: [3]float32{-1, -1, -1}},
		{Position: [3]float32{100, -100, 42}, Color: [3]float32{5, 5, 5}},
	}
	for _, v := range inputs {
		assert.Equal(t, float32(1.0), TransformVertex(v).ClipPosition[3])
	}
}

func TestShadeFragmentIsOpaque(t *testing.T) {
	out := ShadeFragment(VertexOutput{Color: [3]float32{0.5, 0.25, 0.75}})
	assert.Equal(t, [4]float32{0.5, 0.25, 0.75, 1.0}, out)

	// Alpha is 1.0 no matter what the interpolated record carries.
	out = ShadeFragment(VertexOutput{
		ClipPosition: [4]float32{3, -3, 9, 0.5},
		Color:        [3]float32{0, 0, 0},
	})
	assert.Equal(t, float32(1.0), out[3])
}

func TestProceduralVertexPositions(t *testing.T) {
	expected := [][4]float32{
		{0.5, -0.5, 0, 1},
		{0.0, 0.5, 0, 1},
		{-0.5, -0.5, 0, 1},
	}
	for i, want := range expected {
		got := ProceduralVertex(uint32(i))
		assert.Equal(t, want, got.ClipPosition, "vertex index %d", i)
	}
}

func TestProceduralFragmentIsConstantTeal(t *testing.T) {
	teal := [4]float32{0.0, 0.2, 0.2, 1.0}
	assert.Equal(t, teal, ProceduralFragment(VertexOutput{}))
	assert.Equal(t, teal, ProceduralFragment(VertexOutput{Color: [3]float32{1, 1, 1}}))
}

func TestStagesAreDeterministic(t *testing.T) {
	v := mesh.GPUVertex{
		Position: [3]float32{0.1, 0.2, 0.3},
		Color:    [3]float32{0.4, 0.5, 0.6},
	}
	first := TransformVertex(v)
	for range 10 {
		assert.Equal(t, first, TransformVertex(v))
	}

	frag := ShadeFragment(first)
	for range 10 {
		assert.Equal(t, frag, ShadeFragment(first))
	}
}
