package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"ising/internal/sims/ising"

	"github.com/guptarohit/asciigraph"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	tmin := flag.Float64("tmin", 0.5, "lowest temperature")
	tmax := flag.Float64("tmax", 4.0, "highest temperature")
	points := flag.Int("points", 15, "number of temperatures to observe")
	burnIn := flag.Int("burnin", 50, "unmeasured frames per temperature")
	frames := flag.Int("frames", 200, "measured frames per temperature")
	workers := flag.Int("workers", runtime.NumCPU(), "temperatures observed concurrently")
	width := flag.Int("width", 48, "lattice width")
	height := flag.Int("height", 48, "lattice height")
	seed := flag.Int64("seed", 1337, "base seed; temperature i uses seed+i")
	plotHeight := flag.Int("plot-height", 12, "rows of the ASCII plot (0 disables it)")
	var overrides kvList
	flag.Var(&overrides, "set", "model override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("malformed override %q, expected key=value", kv)
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	cfg := ising.FromMap(opts)
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed

	temps := ising.Temperatures(*tmin, *tmax, *points)
	if len(temps) == 0 {
		log.Fatal("no temperatures to observe")
	}

	fmt.Printf("Scanning %d temperatures in [%.3f, %.3f] on %dx%d (%s, %s, feedback=%t, %d workers)\n",
		len(temps), temps[0], temps[len(temps)-1], cfg.Width, cfg.Height, cfg.Boundary, cfg.Sampler, cfg.Feedback, *workers)

	start := time.Now()
	results := ising.Scan(cfg, temps, *burnIn, *frames, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\n%8s %10s %10s %12s %10s\n", "T", "<|m|>", "std", "chi", "<H>")
	peak := results[0]
	series := make([]float64, len(results))
	for i, obs := range results {
		fmt.Printf("%8.3f %10.4f %10.4f %12.4f %10.4f\n",
			obs.Temperature, obs.MeanAbsMagnetization, obs.StdAbsMagnetization, obs.Susceptibility, obs.MeanField)
		series[i] = obs.MeanAbsMagnetization
		if obs.Susceptibility > peak.Susceptibility {
			peak = obs
		}
	}
	fmt.Printf("\nPeak susceptibility %.4f at T=%.3f (elapsed %s)\n", peak.Susceptibility, peak.Temperature, elapsed.Round(time.Millisecond))

	if *plotHeight > 0 && len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(*plotHeight),
			asciigraph.Width(4*len(series)),
			asciigraph.Caption(fmt.Sprintf("<|m|> for T from %.2f to %.2f", temps[0], temps[len(temps)-1])),
		))
	}
}
