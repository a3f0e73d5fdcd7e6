package scene

// SceneBuilderOption is a functional option for configuring a scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene starts active. Scenes default to active.
//
// Parameters:
//   - active: true to render the scene each frame
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}
