package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/n0madic/go-bernoulli-bandit/banditplot"
	"github.com/n0madic/go-bernoulli-bandit/bernoulli"
)

func main() {
	var (
		banditCount int
		trialCount  int
		seed        uint64
		outPath     string
	)

	flag.IntVar(&banditCount, "bandits", 0, "Number of bandits to simulate (at least 2)")
	flag.IntVar(&trialCount, "trials", 0, "Number of attempts to make (less than 1 runs a single attempt)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	flag.StringVar(&outPath, "out", "bandit.html", "Chart output path (empty to disable rendering)")
	flag.Parse()

	supplied := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { supplied[f.Name] = true })
	if !supplied["bandits"] || !supplied["trials"] || flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Usage: banditsim -bandits [number of bandits] -trials [number of attempts]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Run at least one round even when asked for fewer.
	if trialCount < 1 {
		trialCount = 1
	}

	// One source shared by the environment and the posterior keeps the
	// whole run reproducible from the single seed.
	rng := bernoulli.NewSource(seed)

	bandits, err := bernoulli.New(banditCount, bernoulli.WithSource(rng))
	if err != nil {
		log.Fatal(err)
	}

	// Print the hidden probabilities so the reported regret can be
	// verified offline.
	fmt.Println(bandits)

	posterior, err := bernoulli.NewPosterior(banditCount, bernoulli.WithSource(rng))
	if err != nil {
		log.Fatal(err)
	}

	rounds, err := bernoulli.Run(bandits, posterior, trialCount)
	if err != nil {
		log.Fatal(err)
	}

	last := rounds[len(rounds)-1]
	fmt.Printf("%d attempts: %d wins, %d losses, total regret %.4f\n",
		len(rounds), last.Wins, last.Losses, last.Regret)

	if outPath != "" {
		if err := banditplot.RenderFile(outPath, rounds); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Charts written to %s\n", outPath)
	}
}
