package stage

import "runtime"

// RasterizerBuilderOption is a functional option used to configure a Rasterizer during construction.
type RasterizerBuilderOption func(*rasterizer)

// WithBackFaceCulling sets whether clockwise-wound triangles are discarded.
// Enabled by default, matching the GPU pipeline's cull state.
//
// Parameters:
//   - enabled: a boolean indicating whether back-face culling should be enabled
//
// Returns:
//   - RasterizerBuilderOption: a function that sets the back-face culling state
func WithBackFaceCulling(enabled bool) RasterizerBuilderOption {
	return func(r *rasterizer) {
		r.backFaceCulling = enabled
	}
}

// WithRasterWorkers sets the number of worker goroutines rasterizing pixel row
// bands in parallel. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of raster workers (minimum 1)
//
// Returns:
//   - RasterizerBuilderOption: a function that sets the worker count
func WithRasterWorkers(n int) RasterizerBuilderOption {
	return func(r *rasterizer) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

func defaultRasterWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}
