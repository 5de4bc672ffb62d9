package sim

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/goleak"
	"gonum.org/v1/gonum/stat"

	"github.com/freeeve/tenzi/internal/dice"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMonteCarloRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero sides", Config{Kind: KindNaive, Sides: 0, Dice: 10, Simulations: 1}, ErrInvalidSides},
		{"zero dice", Config{Kind: KindNaive, Sides: 6, Dice: 0, Simulations: 1}, ErrInvalidDice},
		{"zero simulations", Config{Kind: KindNaive, Sides: 6, Dice: 10, Simulations: 0}, ErrInvalidSimulations},
		{"bad kind", Config{Kind: Kind(99), Sides: 6, Dice: 10, Simulations: 1}, ErrUnknownStrategy},
	}

	for _, tt := range tests {
		_, err := MonteCarlo(tt.cfg)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestMonteCarloSingleTrial(t *testing.T) {
	// Worker 0 of a seeded run rolls with the base seed, so a lone
	// serial trial is an exact oracle.
	rolls, steps := Run(New(KindNaive, 6, 10, dice.New(dice.Config{Seed: 42})))

	result, err := MonteCarlo(Config{
		Kind:        KindNaive,
		Sides:       6,
		Dice:        10,
		Simulations: 1,
		Workers:     1,
		Seed:        42,
	})
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	if result.AverageRolls != float64(rolls) {
		t.Errorf("average rolls = %v, want %v", result.AverageRolls, float64(rolls))
	}
	if result.StdDevRolls != 0 {
		t.Errorf("std dev rolls = %v, want 0", result.StdDevRolls)
	}
	if result.AverageSteps != float64(steps) {
		t.Errorf("average steps = %v, want %v", result.AverageSteps, float64(steps))
	}
	if result.StdDevSteps != 0 {
		t.Errorf("std dev steps = %v, want 0", result.StdDevSteps)
	}
	if result.Duration <= 0 {
		t.Errorf("duration = %v, want > 0", result.Duration)
	}
}

func TestMonteCarloMatchesSerialOracle(t *testing.T) {
	const (
		simulations = 60
		seed        = 7
	)

	// Replay the single worker's trial sequence serially and reduce
	// it with gonum as an independent check of the streaming totals.
	roller := dice.New(dice.Config{Seed: seed})
	rollSamples := make([]float64, simulations)
	stepSamples := make([]float64, simulations)
	for i := 0; i < simulations; i++ {
		rolls, steps := Run(New(KindMerge, 6, 10, roller))
		rollSamples[i] = float64(rolls)
		stepSamples[i] = float64(steps)
	}

	result, err := MonteCarlo(Config{
		Kind:        KindMerge,
		Sides:       6,
		Dice:        10,
		Simulations: simulations,
		Workers:     1,
		Seed:        seed,
	})
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	const tol = 1e-9
	if diff := math.Abs(result.AverageRolls - stat.Mean(rollSamples, nil)); diff > tol {
		t.Errorf("average rolls off by %v", diff)
	}
	if diff := math.Abs(result.StdDevRolls - stat.PopStdDev(rollSamples, nil)); diff > tol {
		t.Errorf("std dev rolls off by %v", diff)
	}
	if diff := math.Abs(result.AverageSteps - stat.Mean(stepSamples, nil)); diff > tol {
		t.Errorf("average steps off by %v", diff)
	}
	if diff := math.Abs(result.StdDevSteps - stat.PopStdDev(stepSamples, nil)); diff > tol {
		t.Errorf("std dev steps off by %v", diff)
	}
}

func TestMonteCarloReproducible(t *testing.T) {
	cfg := Config{
		Kind:        KindDivide,
		Sides:       6,
		Dice:        20,
		Simulations: 101,
		Workers:     3,
		Seed:        99,
	}

	a, err := MonteCarlo(cfg)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	b, err := MonteCarlo(cfg)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	a.Duration, b.Duration = 0, 0
	if a != b {
		t.Errorf("seeded runs diverged: %+v vs %+v", a, b)
	}
}

func TestMonteCarloReproducibleNegativeSeed(t *testing.T) {
	// With two workers and base seed -1, worker 1's derived seed is
	// zero; it must still roll deterministically rather than fall
	// back to clock seeding.
	cfg := Config{
		Kind:        KindNaive,
		Sides:       6,
		Dice:        10,
		Simulations: 50,
		Workers:     2,
		Seed:        -1,
	}

	a, err := MonteCarlo(cfg)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	b, err := MonteCarlo(cfg)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	a.Duration, b.Duration = 0, 0
	if a != b {
		t.Errorf("negative-seed runs diverged: %+v vs %+v", a, b)
	}
}

func TestMonteCarloWorkerClamp(t *testing.T) {
	// More workers than trials must not spawn idle rollers or skew
	// the totals.
	result, err := MonteCarlo(Config{
		Kind:        KindNaive,
		Sides:       6,
		Dice:        5,
		Simulations: 2,
		Workers:     16,
		Seed:        5,
	})
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	if result.AverageRolls < 5 {
		t.Errorf("average rolls = %v, want >= dice count", result.AverageRolls)
	}
}

func BenchmarkMonteCarloNaive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := MonteCarlo(Config{
			Kind:        KindNaive,
			Sides:       6,
			Dice:        10,
			Simulations: 1000,
			Seed:        1,
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
