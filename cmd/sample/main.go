package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vjovkovs/ttsprep/internal/config"
	"github.com/vjovkovs/ttsprep/internal/probe"
	"github.com/vjovkovs/ttsprep/internal/sample"
)

func main() {
	planPath := flag.String("plan", "", "Path to sampling plan CSV (required; columns: Folder, Target Samples, Samples <bucket>)")
	audioRoot := flag.String("audio_root", "", "Root directory containing audio folders (required unless TTSPREP_AUDIO_ROOT is set)")
	output := flag.String("output", "", "Output CSV path for selected samples (required)")
	seed := flag.Int64("seed", 42, "Random seed for reproducible sampling")
	envFile := flag.String("env", "", "Optional .env file with TTSPREP_* defaults")
	flag.Parse()

	defs := config.Load(*envFile)
	if strings.TrimSpace(*audioRoot) == "" {
		*audioRoot = defs.AudioRoot
	}
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		*seed = defs.Seed
	}

	if strings.TrimSpace(*planPath) == "" {
		log.Fatal("missing -plan (path to sampling plan CSV)")
	}
	if strings.TrimSpace(*audioRoot) == "" {
		log.Fatal("missing -audio_root (root directory containing audio folders)")
	}
	if strings.TrimSpace(*output) == "" {
		log.Fatal("missing -output (CSV path for selected samples)")
	}

	pr := probe.New()
	pr.FFProbePath = defs.FFProbe

	err := sample.Run(sample.Options{
		PlanPath:  abs(expand(*planPath)),
		AudioRoot: abs(expand(*audioRoot)),
		Output:    abs(expand(*output)),
		Seed:      *seed,
		Probe:     pr.Duration,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func expand(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func abs(p string) string {
	if ap, err := filepath.Abs(p); err == nil {
		return ap
	}
	return p
}
