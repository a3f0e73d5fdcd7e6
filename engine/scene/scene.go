package scene

import (
	"fmt"
	"sync"

	"github.com/yogiastawan/xapp/engine/mesh"
	"github.com/yogiastawan/xapp/engine/renderer"
)

// drawable is a single draw command recorded in the scene: either a buffered
// mesh draw or a bufferless procedural draw.
type drawable struct {
	pipelineKey string

	// mesh is set for buffered draws and nil for procedural ones.
	mesh mesh.Mesh

	// vertexCount is the vertex invocation count for procedural draws.
	vertexCount uint32

	instanceCount uint32
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	r renderer.Renderer

	drawables []drawable
}

// Scene holds the renderer and the ordered list of draw commands submitted
// each frame. Meshes added to the scene have their vertex buffers uploaded to
// the GPU on registration; DrawCalls replays the recorded commands within the
// frame the engine opened on the renderer.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Renderer returns the renderer this scene draws through.
	//
	// Returns:
	//   - renderer.Renderer: the scene's renderer
	Renderer() renderer.Renderer

	// Active returns whether the scene participates in the render loop.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether the scene participates in the render loop.
	//
	// Parameters:
	//   - active: true to render the scene each frame
	SetActive(active bool)

	// AddMesh uploads the mesh's vertex data to the GPU (if not already uploaded)
	// and records a buffered draw command against the given pipeline.
	//
	// Parameters:
	//   - pipelineKey: the key of the registered render pipeline to draw with
	//   - m: the mesh to draw
	//
	// Returns:
	//   - error: an error if the vertex buffer upload fails
	AddMesh(pipelineKey string, m mesh.Mesh) error

	// AddProcedural records a bufferless draw command against the given pipeline.
	// The pipeline's vertex shader derives positions from the vertex index alone.
	//
	// Parameters:
	//   - pipelineKey: the key of the registered render pipeline to draw with
	//   - vertexCount: the number of vertex invocations to issue
	AddProcedural(pipelineKey string, vertexCount uint32)

	// ClearDrawables removes all recorded draw commands from the scene.
	ClearDrawables()

	// DrawCalls replays the scene's recorded draw commands into the current
	// frame. Must be called between the renderer's BeginFrame and EndFrame.
	//
	// Returns:
	//   - error: an error if any referenced pipeline is not registered
	DrawCalls() error
}

var _ Scene = &scene{}

// NewScene creates a new Scene bound to the given renderer. The renderer is
// required and NewScene panics if it is nil. Scenes start active.
//
// Parameters:
//   - name: the name of the scene
//   - r: the renderer the scene draws through
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if r == nil {
		panic("scene: renderer is required")
	}

	s := &scene{
		mu:     &sync.Mutex{},
		name:   name,
		active: true,
		r:      r,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) AddMesh(pipelineKey string, m mesh.Mesh) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider := m.Provider()
	if provider.VertexBuffer() == nil {
		if err := s.r.InitVertexBuffer(provider, m.VertexData(), m.VertexCount()); err != nil {
			return fmt.Errorf("scene %q: failed to upload mesh %q: %w", s.name, m.Name(), err)
		}
	}

	s.drawables = append(s.drawables, drawable{
		pipelineKey:   pipelineKey,
		mesh:          m,
		instanceCount: 1,
	})
	return nil
}

func (s *scene) AddProcedural(pipelineKey string, vertexCount uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawables = append(s.drawables, drawable{
		pipelineKey:   pipelineKey,
		vertexCount:   vertexCount,
		instanceCount: 1,
	})
}

func (s *scene) ClearDrawables() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawables = s.drawables[:0]
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	drawables := make([]drawable, len(s.drawables))
	copy(drawables, s.drawables)
	s.mu.Unlock()

	for _, d := range drawables {
		if d.mesh != nil {
			if err := s.r.DrawCall(d.pipelineKey, d.mesh.Provider(), d.instanceCount); err != nil {
				return err
			}
			continue
		}
		if err := s.r.DrawProcedural(d.pipelineKey, d.vertexCount); err != nil {
			return err
		}
	}
	return nil
}
