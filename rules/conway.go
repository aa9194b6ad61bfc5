package rules

/*
Policy decides whether a currently-live cell survives into the next generation
given its live-neighbor count (0..8).

Policies govern survival only: the birth of dead cells is the board's fixed
rule and is never delegated here.
*/
type Policy interface {
	NextState(aliveNeighbors int) bool
}

// PolicyFunc adapts a plain function to the Policy interface, so a rule can be
// supplied as a function value without declaring a new type.
type PolicyFunc func(aliveNeighbors int) bool

// NextState calls f.
func (f PolicyFunc) NextState(aliveNeighbors int) bool {
	return f(aliveNeighbors)
}

// Standard is Conway's survival rule: a live cell stays alive with exactly
// 2 or 3 live neighbors.
var Standard Policy = PolicyFunc(func(aliveNeighbors int) bool {
	return aliveNeighbors == 2 || aliveNeighbors == 3
})
