package mesh_provider

import "github.com/yogiastawan/xapp/common"

// MeshProviderBuilderOption is a functional option used to configure a MeshProvider during construction.
type MeshProviderBuilderOption func(*meshProvider)

// WithLabel sets the debug label for this provider. Empty labels fall back to "Mesh".
//
// Parameters:
//   - label: the debug label to use
//
// Returns:
//   - MeshProviderBuilderOption: a function that sets the label on a provider
func WithLabel(label string) MeshProviderBuilderOption {
	return func(p *meshProvider) {
		p.label = common.Coalesce(label, "Mesh")
	}
}
