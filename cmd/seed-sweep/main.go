package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"emergent-ca/internal/sims/emergent"
	"emergent-ca/internal/stats"
)

type scenarioResult struct {
	seed          int64
	finalMean     float64
	finalMemory   float64
	flatTicks     int
	perturbations int
	period        float64
}

func main() {
	seeds := flag.Int("seeds", 64, "number of seeds to run")
	first := flag.Int64("first", 1, "first seed")
	ticks := flag.Int("ticks", 300, "ticks to simulate per seed")
	size := flag.Int("size", 32, "grid width and height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base := emergent.DefaultConfig()
	base.Width = *size
	base.Height = *size
	base.Ticks = *ticks

	fmt.Printf("Sweeping %d seeds (%d workers, %d ticks)\n", *seeds, *workers, *ticks)

	jobs := make(chan int64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runScenario(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		fmt.Printf("seed=%d mean=%.4f memory=%.4f flat=%d perturbations=%d period=%.1f\n",
			res.seed, res.finalMean, res.finalMemory, res.flatTicks, res.perturbations, res.period)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].perturbations != all[j].perturbations {
			return all[i].perturbations > all[j].perturbations
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 seeds by perturbation count (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d perturbations=%d flat=%d mean=%.4f\n", i+1, res.seed, res.perturbations, res.flatTicks, res.finalMean)
	}
}

func runScenario(base emergent.Config, seed int64) scenarioResult {
	cfg := base
	cfg.Seed = seed
	world := emergent.NewWithConfig(cfg)

	var series stats.Series
	for step := 0; step < cfg.Ticks; step++ {
		world.Step()
		series.Record(world.Steps(), world.Grid(), world.Perturbed())
	}

	return scenarioResult{
		seed:          seed,
		finalMean:     world.Grid().Mean(emergent.ChannelStructure),
		finalMemory:   world.Grid().Mean(emergent.ChannelMemory),
		flatTicks:     series.TicksBelow(emergent.ChannelStructure, emergent.FlatlineThreshold),
		perturbations: world.Perturbations(),
		period:        stats.DominantPeriod(series.Means[emergent.ChannelOscillator]),
	}
}
