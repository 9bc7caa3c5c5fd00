package application

type SolveCommand struct {
	Cheeses int
	Save    bool
}
