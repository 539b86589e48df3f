package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"emergent-ca/internal/core"
	"emergent-ca/internal/sims/emergent"
	"emergent-ca/internal/sink"
	"emergent-ca/internal/stats"
)

func main() {
	cfg := emergent.DefaultConfig()
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height")
	flag.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "ticks to simulate")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for grid initialisation and perturbations")
	video := flag.String("video", "emergent.avi", "MJPEG AVI output path (empty to skip)")
	chartPath := flag.String("chart", "emergent_means.png", "channel mean chart output path (empty to skip)")
	scale := flag.Int("scale", 16, "pixel scale multiplier for the video")
	fps := flag.Int("fps", 10, "video playback rate")
	flag.Parse()

	world := emergent.NewWithConfig(cfg)

	var sinks []core.Sink
	if *video != "" {
		sinks = append(sinks, sink.NewRecorder(*video, cfg.Width, cfg.Height, *scale, *fps))
	}
	cw := sink.NewChartWriter(*chartPath, world)
	cw.Title = fmt.Sprintf("Channel means (seed %d)", cfg.Seed)
	if *chartPath != "" {
		sinks = append(sinks, cw)
	}

	log.Printf("running %d ticks on a %dx%d grid (seed %d)", cfg.Ticks, cfg.Width, cfg.Height, cfg.Seed)
	start := time.Now()
	if err := sink.Run(world, cfg.Ticks, sinks...); err != nil {
		log.Fatalf("run failed: %v", err)
	}

	fmt.Printf("Finished %d ticks in %s\n", world.Steps(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Mean structure %.4f, memory %.4f, perturbations %d\n",
		world.Grid().Mean(emergent.ChannelStructure), world.Grid().Mean(emergent.ChannelMemory), world.Perturbations())
	if *chartPath != "" {
		series := cw.Series()
		fmt.Printf("Oscillator period ~%.1f ticks, %d ticks below flatline threshold\n",
			stats.DominantPeriod(series.Means[emergent.ChannelOscillator]),
			series.TicksBelow(emergent.ChannelStructure, emergent.FlatlineThreshold))
		fmt.Printf("Chart written to %s\n", *chartPath)
	}
	if *video != "" {
		fmt.Printf("Video written to %s\n", *video)
	}
}
