package mesh_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// meshProvider is the unexported implementation of MeshProvider.
type meshProvider struct {
	// label is a debug label added for convenience.
	label string

	// vertexBuffer is the GPU vertex buffer created for this provider, or nil if not
	// initialized with the Renderer. It is populated by the Renderer, not by user-creation.
	vertexBuffer *wgpu.Buffer

	// vertexCount is the number of vertices for draw calls, used by the Renderer to
	// issue non-indexed draw calls for this provider.
	vertexCount int
}

// MeshProvider defines the interface for components that hold GPU vertex data.
// A Mesh creates a MeshProvider describing its buffer requirements; the Renderer
// then initializes the GPU buffer via InitVertexBuffer and reads it back during
// draw calls. The triangle pipelines are non-indexed, so the provider tracks a
// vertex count rather than an index count.
//
// Usage pattern:
//  1. Mesh creates a MeshProvider with a debug label
//  2. Scene calls Renderer.InitVertexBuffer(provider, data, count) to create GPU resources
//  3. Renderer accesses VertexBuffer() and VertexCount() for draw calls
type MeshProvider interface {
	// Release releases any GPU resources held by this provider.
	Release()

	// Label returns the debug label for this provider.
	// Used for debugging and profiling purposes.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// VertexCount returns the number of vertices for draw calls.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// SetVertexBuffer stores the GPU vertex buffer on this provider.
	// Called by the Renderer after buffer creation.
	//
	// Parameters:
	//   - buf: the vertex buffer to store
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetVertexCount stores the number of vertices for draw calls.
	//
	// Parameters:
	//   - count: the vertex count
	SetVertexCount(count int)
}

var _ MeshProvider = &meshProvider{}

// NewMeshProvider creates a new MeshProvider with the specified options applied.
//
// Parameters:
//   - opts: a variadic list of MeshProviderBuilderOption functions to configure the provider
//
// Returns:
//   - MeshProvider: a new MeshProvider instance
func NewMeshProvider(opts ...MeshProviderBuilderOption) MeshProvider {
	p := &meshProvider{
		label: "Mesh",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *meshProvider) Release() {
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	p.vertexCount = 0
}

func (p *meshProvider) Label() string {
	return p.label
}

func (p *meshProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *meshProvider) VertexCount() int {
	return p.vertexCount
}

func (p *meshProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *meshProvider) SetVertexCount(count int) {
	p.vertexCount = count
}
