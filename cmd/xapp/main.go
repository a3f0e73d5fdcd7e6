package main

import (
	"flag"
	"log"

	"github.com/yogiastawan/xapp/common"
	"github.com/yogiastawan/xapp/engine"
	"github.com/yogiastawan/xapp/engine/mesh"
	"github.com/yogiastawan/xapp/engine/renderer"
	"github.com/yogiastawan/xapp/engine/renderer/pipeline"
	"github.com/yogiastawan/xapp/engine/renderer/shader"
	"github.com/yogiastawan/xapp/engine/scene"
	"github.com/yogiastawan/xapp/engine/window"
)

func main() {
	procedural := flag.Bool("procedural", false, "start with the bufferless procedural triangle")
	vsync := flag.Bool("vsync", true, "wait for vertical blank when presenting")
	msaa := flag.Uint("msaa", 4, "MSAA sample count (1, 4, or 8)")
	profile := flag.Bool("profile", false, "log FPS and memory stats once per second")
	software := flag.Bool("software", false, "force the software fallback adapter")
	flag.Parse()

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
		engine.WithWindow(window.NewWindow(
			window.WithTitle("XApp - Colored Triangle"),
			window.WithWidth(800),
			window.WithHeight(600),
		)),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(*msaa)),
		renderer.WithForceSoftwareRenderer(*software),
	)

	// ── Shaders + Pipelines ─────────────────────────────────────────────
	// Both pipelines use the opaque triangle defaults: triangle list, CCW front
	// faces, back-face culling, replace blending.
	trianglePipeline := pipeline.NewPipeline("triangle",
		pipeline.WithVertexShader(shader.NewShader("triangle_vert", shader.ShaderTypeVertex, "assets/shaders/triangle.wgsl")),
		pipeline.WithFragmentShader(shader.NewShader("triangle_frag", shader.ShaderTypeFragment, "assets/shaders/triangle.wgsl")),
	)
	proceduralPipeline := pipeline.NewPipeline("procedural",
		pipeline.WithVertexShader(shader.NewShader("procedural_vert", shader.ShaderTypeVertex, "assets/shaders/procedural.wgsl")),
		pipeline.WithFragmentShader(shader.NewShader("procedural_frag", shader.ShaderTypeFragment, "assets/shaders/procedural.wgsl")),
	)

	if err := r.RegisterPipelines(trianglePipeline, proceduralPipeline); err != nil {
		log.Fatalf("failed to register pipelines: %v", err)
	}

	// ── Scenes ──────────────────────────────────────────────────────────
	// One scene per variant; Space swaps which one is active.
	triangleScene := scene.NewScene("triangle", r, scene.WithActive(!*procedural))
	if err := triangleScene.AddMesh("triangle", mesh.NewMesh(
		mesh.WithName("triangle"),
		mesh.WithVertices(mesh.TriangleVertices()),
	)); err != nil {
		log.Fatalf("failed to add triangle mesh: %v", err)
	}

	proceduralScene := scene.NewScene("procedural", r, scene.WithActive(*procedural))
	proceduralScene.AddProcedural("procedural", 3)

	eng.AddScene(0, triangleScene)
	eng.AddScene(1, proceduralScene)

	// ── Input ───────────────────────────────────────────────────────────
	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeySpace {
			active := triangleScene.Active()
			triangleScene.SetActive(!active)
			proceduralScene.SetActive(active)
		}
	})

	log.Println("Starting XApp (Space toggles the procedural triangle, Escape quits)")
	eng.Run()
}
