package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/steering/prefabs"
	"github.com/milk9111/steering/sim"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var (
		ticks    int
		every    int
		config   string
		scenario string
		strategy string
		cars     int
		seed     int
		verbose  bool
	)

	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&ticks, "ticks", 3600, "ticks to simulate")
	fs.IntVar(&every, "every", 600, "print stats every N ticks (0 disables)")
	fs.StringVar(&config, "config", prefabs.DefaultSimFile, "simulation config under prefabs/")
	fs.StringVar(&scenario, "scenario", "", "override the scenario script (\"none\" disables it)")
	fs.StringVar(&strategy, "strategy", "", "override the navigation strategy (astar)")
	fs.IntVar(&cars, "cars", -1, "override the population size")
	fs.IntVar(&seed, "seed", -1, "override the scenario seed")
	fs.BoolVar(&verbose, "verbose", false, "log every path event")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if ticks <= 0 {
		return fmt.Errorf("headless: -ticks must be > 0, got %d", ticks)
	}

	spec, err := prefabs.LoadSimSpec(config)
	if err != nil {
		return err
	}
	switch scenario {
	case "":
	case "none":
		spec.Scenario.Script = ""
	default:
		spec.Scenario.Script = scenario
	}
	if strategy != "" {
		spec.Population.Strategy = strategy
	}
	if cars >= 0 {
		spec.Population.Count = cars
	}
	if seed >= 0 {
		spec.Scenario.Seed = seed
	}

	s, err := sim.New(spec, sim.Options{VerboseLog: verbose})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "=== Headless Corridor Run ===\n")
	fmt.Fprintf(out, "config=%s ticks=%d cars=%d strategy=%s\n\n", config, ticks, spec.Population.Count, spec.Population.Strategy)

	for i := 1; i <= ticks; i++ {
		s.Step()
		if every > 0 && i%every == 0 {
			st := s.Stats()
			fmt.Fprintf(out, "[T=%05d] alive=%d score=%.3f distance=%.1f recalcs=%d fallbacks=%d\n",
				i, st.NumCarsAlive, st.MaxCurrentScore, st.MaxDistanceTravelled, st.Recalculations, st.FallbackPaths)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, s.Report())
	if verbose {
		fmt.Fprintln(out)
		fmt.Fprint(out, s.Log().Format())
	}
	return nil
}
