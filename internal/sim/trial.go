package sim

// Run drives a fresh strategy through roll/step rounds until it
// reaches Tenzi, returning the total die rolls and rounds it took.
func Run(s Strategy) (rolls, steps int) {
	for !s.Done() {
		s.Roll()
		s.Step()
	}
	return s.NumRolls(), s.NumSteps()
}
