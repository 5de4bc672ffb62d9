// Command tenzi runs Monte Carlo simulations of the dice game Tenzi
// and reports how many rolls and rounds each strategy needs on average
// to get every die onto the same face.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/tenzi/internal/config"
	"github.com/freeeve/tenzi/internal/logger"
	"github.com/freeeve/tenzi/internal/sim"
)

var (
	paramStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	averageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	stdDevStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tenzi: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	var (
		sides    int
		numDice  int
		sims     int
		strategy string
		workers  int
		seed     int64
		jsonOut  bool
	)

	flag.IntVar(&sides, "sides", cfg.Sides, "Number of sides on each die")
	flag.IntVar(&numDice, "dice", cfg.Dice, "Number of dice to roll")
	flag.IntVar(&sims, "m", cfg.Simulations, "Number of simulations to run")
	flag.IntVar(&sims, "simulations", cfg.Simulations, "Number of simulations to run")
	flag.StringVar(&strategy, "strategy", cfg.Strategy, "Strategy: naive, divide, or merge")
	flag.IntVar(&workers, "workers", cfg.Workers, "Concurrency (0 = one worker per CPU)")
	flag.Int64Var(&seed, "seed", cfg.Seed, "Base seed (0 = random)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	kind, err := sim.ParseKind(strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid strategy")
	}

	if !jsonOut {
		fmt.Printf("Running %s tenzi monte carlo simulations with %s %s-sided dice, strategy `%s`.\n",
			paramStyle.Render(fmt.Sprint(sims)),
			paramStyle.Render(fmt.Sprint(numDice)),
			paramStyle.Render(fmt.Sprint(sides)),
			paramStyle.Render(kind.String()))
	}

	result, err := sim.MonteCarlo(sim.Config{
		Kind:        kind,
		Sides:       sides,
		Dice:        numDice,
		Simulations: sims,
		Workers:     workers,
		Seed:        seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	if jsonOut {
		printJSON(result)
		return
	}
	printSummary(result)
}

func printJSON(result sim.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("Encoding results failed")
	}
}

func printSummary(result sim.Result) {
	fmt.Printf("Average rolls:       %s\n", averageStyle.Render(fmt.Sprintf("%.8f", result.AverageRolls)))
	fmt.Printf("Std dev rolls:       %s\n", stdDevStyle.Render(fmt.Sprintf("%.8f", result.StdDevRolls)))
	fmt.Printf("Average rounds:      %s\n", averageStyle.Render(fmt.Sprintf("%.8f", result.AverageSteps)))
	fmt.Printf("Std dev rounds:      %s\n", stdDevStyle.Render(fmt.Sprintf("%.8f", result.StdDevSteps)))
	fmt.Printf("Duration:            %s\n", durationStyle.Render(result.Duration.String()))
}
