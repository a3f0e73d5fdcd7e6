package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogiastawan/xapp/engine/renderer/mesh_provider"
)

func TestNewMeshWithVertices(t *testing.T) {
	m := NewMesh(
		WithName("triangle"),
		WithVertices(TriangleVertices()),
	)

	assert.Equal(t, "triangle", m.Name())
	assert.Equal(t, 3, m.VertexCount())
	assert.Len(t, m.VertexData(), 3*24)

	require.NotNil(t, m.Provider())
	assert.Equal(t, "triangle", m.Provider().Label())
	assert.Nil(t, m.Provider().VertexBuffer())
}

func TestNewMeshWithVertexData(t *testing.T) {
	data := make([]byte, 6*24)
	m := NewMesh(WithVertexData(data, 6))

	assert.Equal(t, 6, m.VertexCount())
	assert.Len(t, m.VertexData(), 6*24)
}

func TestNewMeshWithProvider(t *testing.T) {
	p := mesh_provider.NewMeshProvider(mesh_provider.WithLabel("custom"))
	m := NewMesh(WithProvider(p))

	assert.Same(t, p, m.Provider())
}
