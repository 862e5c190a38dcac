package objects

import "fmt"

// Position is a per-instruction source position, the unit the spec's
// "positions" parallel array carries per §3.1/§9 ("Parallel vectors").
// Stripped builds can drop this array entirely without touching Code.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
