package sim

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/freeeve/tenzi/internal/dice"
)

// Configuration errors, reported before any trial is constructed.
var (
	ErrInvalidSides       = errors.New("sim: number of sides must be at least 1")
	ErrInvalidDice        = errors.New("sim: number of dice must be at least 1")
	ErrInvalidSimulations = errors.New("sim: number of simulations must be at least 1")
)

// Config describes a Monte Carlo run.
type Config struct {
	Kind        Kind
	Sides       int
	Dice        int
	Simulations int

	// Workers caps the worker pool; 0 means one per CPU. The pool is
	// always clamped to the trial count.
	Workers int

	// Seed makes the run reproducible when nonzero: worker w rolls
	// with seed Seed+w. Results are identical across runs with the
	// same Seed, Workers, and Simulations.
	Seed int64
}

func (c Config) validate() error {
	if c.Sides < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSides, c.Sides)
	}
	if c.Dice < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDice, c.Dice)
	}
	if c.Simulations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSimulations, c.Simulations)
	}
	if c.Kind < KindNaive || c.Kind > KindMerge {
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, c.Kind)
	}
	return nil
}

// Result holds the aggregate estimates from a Monte Carlo run.
type Result struct {
	AverageRolls float64       `json:"average_rolls"`
	StdDevRolls  float64       `json:"std_dev_rolls"`
	AverageSteps float64       `json:"average_steps"`
	StdDevSteps  float64       `json:"std_dev_steps"`
	Duration     time.Duration `json:"duration_ns"`
}

// MonteCarlo runs cfg.Simulations independent trials across a fixed
// worker pool and reduces them to mean and population standard
// deviation of rolls and rounds. Trials share nothing but the four
// atomic totals, which are only read after the pool has joined.
func MonteCarlo(cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Simulations {
		workers = cfg.Simulations
	}

	var totalRolls, totalSqRolls atomic.Uint64
	var totalSteps, totalSqSteps atomic.Uint64

	per := cfg.Simulations / workers
	rem := cfg.Simulations % workers

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		trials := per
		if w < rem {
			trials++
		}

		wg.Add(1)
		go func(w, trials int) {
			defer wg.Done()

			// NewSeeded keeps derived seeds deterministic even when
			// base+offset lands on zero.
			roller := dice.New(dice.Config{})
			if cfg.Seed != 0 {
				roller = dice.NewSeeded(cfg.Seed + int64(w))
			}
			for i := 0; i < trials; i++ {
				rolls, steps := Run(New(cfg.Kind, cfg.Sides, cfg.Dice, roller))

				totalRolls.Add(uint64(rolls))
				totalSqRolls.Add(uint64(rolls) * uint64(rolls))
				totalSteps.Add(uint64(steps))
				totalSqSteps.Add(uint64(steps) * uint64(steps))
			}
		}(w, trials)
	}
	wg.Wait()

	elapsed := time.Since(start)

	n := float64(cfg.Simulations)
	avgRolls, sdRolls := meanStdDev(totalRolls.Load(), totalSqRolls.Load(), n)
	avgSteps, sdSteps := meanStdDev(totalSteps.Load(), totalSqSteps.Load(), n)

	return Result{
		AverageRolls: avgRolls,
		StdDevRolls:  sdRolls,
		AverageSteps: avgSteps,
		StdDevSteps:  sdSteps,
		Duration:     elapsed,
	}, nil
}

// meanStdDev reduces a running total and sum of squares to mean and
// population standard deviation. Floating-point rounding can push the
// variance a hair below zero for N=1; clamp before the square root.
func meanStdDev(total, totalSq uint64, n float64) (float64, float64) {
	avg := float64(total) / n
	variance := float64(totalSq)/n - avg*avg
	if variance < 0 {
		variance = 0
	}
	return avg, math.Sqrt(variance)
}
