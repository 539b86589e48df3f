//go:build ebiten

package main

import (
	"flag"
	"log"

	"emergent-ca/internal/app"
	"emergent-ca/internal/core"
	_ "emergent-ca/internal/sims/emergent"
	"emergent-ca/internal/sink"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	var sinks []core.Sink
	if cfg.Record != "" {
		size := sim.Size()
		sinks = append(sinks, sink.NewRecorder(cfg.Record, size.W, size.H, cfg.Scale, 10))
		log.Printf("recording frames to %s", cfg.Record)
	}

	game := app.New(sim, cfg, sinks...)
	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
