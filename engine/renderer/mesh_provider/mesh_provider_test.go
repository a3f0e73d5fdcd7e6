package mesh_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeshProviderDefaults(t *testing.T) {
	p := NewMeshProvider()

	assert.Equal(t, "Mesh", p.Label())
	assert.Nil(t, p.VertexBuffer())
	assert.Equal(t, 0, p.VertexCount())
}

func TestNewMeshProviderWithLabel(t *testing.T) {
	p := NewMeshProvider(WithLabel("triangle"))
	assert.Equal(t, "triangle", p.Label())

	// An empty label falls back to the default.
	p = NewMeshProvider(WithLabel(""))
	assert.Equal(t, "Mesh", p.Label())
}

func TestSetVertexCount(t *testing.T) {
	p := NewMeshProvider()
	p.SetVertexCount(3)
	assert.Equal(t, 3, p.VertexCount())
}
