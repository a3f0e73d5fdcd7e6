package mesh

import (
	"github.com/yogiastawan/xapp/common"
	"github.com/yogiastawan/xapp/engine/renderer/mesh_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertex data of the Mesh from
// typed GPUVertex records. The vertex count is derived from the slice length.
//
// Parameters:
//   - vertices: the vertices to serialize into the mesh's vertex data
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertices option to a mesh
func WithVertices(vertices []GPUVertex) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = common.SliceToBytes(vertices)
		m.vertexCount = len(vertices)
	}
}

// WithVertexData is an option builder that sets raw vertex bytes directly.
// The caller is responsible for matching the GPUVertex layout and supplying
// the corresponding vertex count.
//
// Parameters:
//   - data: the raw vertex data bytes
//   - count: the number of vertices represented in data
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertex data option to a mesh
func WithVertexData(data []byte, count int) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = data
		m.vertexCount = count
	}
}

// WithProvider is an option builder that sets the MeshProvider of the Mesh.
//
// Parameters:
//   - provider: the MeshProvider to use for GPU resources
//
// Returns:
//   - MeshBuilderOption: a function that applies the provider option to a mesh
func WithProvider(provider mesh_provider.MeshProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.provider = provider
	}
}
