// Command goosesim runs the silly-goose simulation headless: it steps
// the ball physics, re-packs the dynamic buffers, and runs the vertex
// stage over the whole scene each frame, logging throughput once per
// second the way the windowed renderer logs FPS.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	goose "github.com/jeff-pow/silly-goose"
	"github.com/jeff-pow/silly-goose/render"
	"github.com/jeff-pow/silly-goose/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML scene config (defaults used when empty or missing)")
		frames     = flag.Int("frames", 10000, "number of frames to simulate")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	goose.SetLogger(logger)

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = scene.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	s := cfg.Build()
	buffers := render.NewBufferSet(s)

	slog.Info("scene built",
		"static_meshes", len(s.StaticMeshes),
		"dynamic_meshes", len(s.DynamicMeshes),
		"balls", len(s.Balls),
		"time_step", cfg.TimeStep)

	staticOut := make([]goose.VertexOutput, len(s.StaticVertices()))
	dynamicOut := make([]goose.VertexOutput, len(s.DynamicVertices()))

	frameCount := 0
	lastReport := time.Now()

	for frame := 0; frame < *frames; frame++ {
		s.UpdatePhysics(cfg.TimeStep)
		s.UpdateDynamicVertices()
		buffers.UpdateDynamic(s)

		if err := goose.ShadeVertices(staticOut, s.StaticVertices()); err != nil {
			log.Fatalf("Failed to shade static vertices: %v", err)
		}
		if err := goose.ShadeVertices(dynamicOut, s.DynamicVertices()); err != nil {
			log.Fatalf("Failed to shade dynamic vertices: %v", err)
		}

		frameCount++
		if elapsed := time.Since(lastReport); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			slog.Info("simulation progress", "fps", fps, "frame", frame+1)
			frameCount = 0
			lastReport = time.Now()
		}
	}

	for i, b := range s.Balls {
		slog.Info("final ball state",
			"ball", i,
			"position", b.Position,
			"velocity", b.Velocity)
	}
	slog.Info("simulation complete",
		"frames", *frames,
		"dynamic_vertex_bytes", len(buffers.DynamicVertexData))
}
