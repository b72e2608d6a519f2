package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Step and Reset report whether any cell changed so callers can skip
// redundant redraws.
type Sim interface {
	Name() string
	Size() Size
	Reset() bool
	Step() bool
	Grid() *Grid
}

// Reseeder is implemented by sims that can restart from a fixed seed.
type Reseeder interface {
	Reseed(seed int64) bool
}

// Stats is implemented by sims that track run statistics.
type Stats interface {
	Generation() int
	Population() int
}
