// Package sim implements the Tenzi trial engine: a per-face histogram
// state machine, three keep/re-roll strategies over it, and a parallel
// Monte Carlo aggregator that reduces many independent trials to
// mean/standard-deviation estimates.
package sim

import (
	"errors"
	"fmt"
)

// Kind selects one of the three re-roll strategies.
type Kind int

const (
	KindNaive Kind = iota
	KindDivide
	KindMerge
)

func (k Kind) String() string {
	switch k {
	case KindNaive:
		return "naive"
	case KindDivide:
		return "divide"
	case KindMerge:
		return "merge"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUnknownStrategy is returned for strategy names outside
// naive/divide/merge.
var ErrUnknownStrategy = errors.New("sim: unknown strategy")

// ParseKind maps a strategy name to its Kind. Unrecognized names are
// rejected so no simulation work is dispatched for them.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "naive":
		return KindNaive, nil
	case "divide":
		return KindDivide, nil
	case "merge":
		return KindMerge, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Roller is the die source a strategy draws from. *dice.Roller
// satisfies it; tests substitute scripted sources.
type Roller interface {
	Roll(sides int) int
}

// Strategy is one Tenzi trial in progress. A trial alternates Roll and
// Step until Done. Instances are single-use and never shared across
// goroutines.
type Strategy interface {
	// Roll rolls every unlocked die and banks the results in the
	// histogram.
	Roll()
	// Step applies the strategy's keep/re-roll policy: it zeroes the
	// buckets to be re-rolled and decides whether the trial is done.
	Step()
	Done() bool
	NumRolls() int
	NumSteps() int
}

// New returns a fresh trial for the given strategy kind.
func New(kind Kind, numSides, numDice int, r Roller) Strategy {
	switch kind {
	case KindNaive:
		return NewNaive(numSides, numDice, r)
	case KindDivide:
		return NewDivide(numSides, numDice, r)
	case KindMerge:
		return NewMerge(numSides, numDice, r)
	}
	panic(fmt.Sprintf("sim: bad strategy kind %d", int(kind)))
}

// counters tracks the per-trial totals common to every strategy.
type counters struct {
	numRolls int
	numSteps int
	done     bool
}

func (c *counters) NumRolls() int { return c.numRolls }
func (c *counters) NumSteps() int { return c.numSteps }
func (c *counters) Done() bool    { return c.done }

// state is the histogram and round bookkeeping shared by the three
// strategies via embedding.
type state struct {
	counters

	// buckets[k] is the number of dice currently locked on face k+1.
	// The bucket sum never exceeds numDice.
	buckets   []int
	numDice   int
	numSides  int
	numToRoll int
	roller    Roller
	scan      modeScanner
}

func newState(numSides, numDice int, r Roller) state {
	return state{
		buckets:   make([]int, numSides),
		numDice:   numDice,
		numSides:  numSides,
		numToRoll: numDice,
		roller:    r,
		scan:      newModeScanner(numSides),
	}
}

// Roll performs numToRoll independent die rolls, bumping the bucket of
// each face rolled.
func (s *state) Roll() {
	for i := 0; i < s.numToRoll; i++ {
		s.buckets[s.roller.Roll(s.numSides)-1]++
	}
	s.numRolls += s.numToRoll
}

// finishRound closes out a step: the trial is done once every die is
// in a kept bucket, otherwise the shortfall is re-rolled next round.
func (s *state) finishRound(kept int) {
	if kept == s.numDice {
		s.done = true
	} else {
		s.numToRoll = s.numDice - kept
	}
	s.numSteps++
}

func (s *state) keptSum() int {
	sum := 0
	for _, c := range s.buckets {
		sum += c
	}
	return sum
}
