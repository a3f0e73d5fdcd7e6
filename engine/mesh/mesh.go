package mesh

import (
	"github.com/yogiastawan/xapp/engine/renderer/mesh_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name        string
	provider    mesh_provider.MeshProvider
	vertexData  []byte
	vertexCount int
}

// Mesh defines the interface for a drawable vertex-colored mesh.
// A Mesh is a GPU-ready container pairing raw vertex bytes with the
// MeshProvider that will hold the uploaded GPU buffer. Vertex data must follow
// the GPUVertex layout (24-byte stride, position at location 0, color at
// location 1) — the Renderer performs no validation, a mismatched layout is a
// host configuration error surfaced at pipeline-creation time.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Provider retrieves the MeshProvider holding GPU vertex resources.
	//
	// Returns:
	//   - mesh_provider.MeshProvider: the mesh provider
	Provider() mesh_provider.MeshProvider

	// VertexData returns the raw vertex data for this mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// VertexCount returns the number of vertices in this mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh with the specified options applied.
// A MeshProvider is created automatically when none is supplied via WithProvider.
//
// Parameters:
//   - opts: a variadic list of MeshBuilderOption functions to configure the mesh
//
// Returns:
//   - Mesh: a new Mesh instance
func NewMesh(opts ...MeshBuilderOption) Mesh {
	m := &mesh{
		name: "mesh",
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.provider == nil {
		m.provider = mesh_provider.NewMeshProvider(mesh_provider.WithLabel(m.name))
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Provider() mesh_provider.MeshProvider {
	return m.provider
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) VertexCount() int {
	return m.vertexCount
}
