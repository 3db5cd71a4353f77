package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"majority-ca/internal/sims/majority"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("threshold %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	base := majority.DefaultConfig()
	configPath := flag.String("config", "", "JSON file with the base grid settings")
	width := flag.Int("w", base.Width, "grid width for each run")
	height := flag.Int("h", base.Height, "grid height for each run")
	fill := flag.Float64("fill", base.FillPercent, "probability a cell starts alive")
	seeds := flag.Int("seeds", 8, "number of seeds per threshold")
	prefix := flag.String("seed-prefix", "sweep", "seed strings are <prefix>-<n>")
	steps := flag.Int("steps", 200, "generation budget per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	var thresholds intList
	flag.Var(&thresholds, "thresholds", "comma-separated neighbor thresholds (default 3,4,5)")
	flag.Parse()

	if *configPath != "" {
		loaded, err := majority.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		base = loaded
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *configPath == "" || set["w"] {
		base.Width = *width
	}
	if *configPath == "" || set["h"] {
		base.Height = *height
	}
	if *configPath == "" || set["fill"] {
		base.FillPercent = *fill
	}
	if len(thresholds) == 0 {
		thresholds = intList{3, 4, 5}
	}

	var cfgs []majority.Config
	for _, threshold := range thresholds {
		for i := 0; i < *seeds; i++ {
			cfg := base
			cfg.Seed = fmt.Sprintf("%s-%d", *prefix, i)
			cfg.NeighborThreshold = threshold
			cfgs = append(cfgs, cfg)
		}
	}

	fmt.Printf("Sweeping %d runs on %dx%d (fill %.2f, %d workers, %d steps)\n",
		len(cfgs), base.Width, base.Height, base.FillPercent, *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcomes, err := majority.Sweep(ctx, cfgs, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	fmt.Printf("%-9s %-16s %6s %-12s %7s %7s\n", "threshold", "seed", "gens", "state", "start", "end")
	for _, out := range outcomes {
		fmt.Printf("%-9d %-16s %6d %-12s %6.1f%% %6.1f%%\n",
			out.Config.NeighborThreshold, out.Config.Seed, out.Generations, describe(out.Period),
			100*out.InitialAlive, 100*out.FinalAlive)
	}
}

func describe(period int) string {
	switch period {
	case 0:
		return "evolving"
	case 1:
		return "stable"
	default:
		return fmt.Sprintf("period %d", period)
	}
}
