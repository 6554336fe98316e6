package engine

// Perft counts the leaf nodes of the play tree below g to the given depth.
// Discards are plays like any other, and a won position is a leaf however
// much depth remains. It is used to validate play generation.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 || g.status.Over {
		return 1
	}

	var nodes uint64
	for _, p := range g.Plays() {
		child := g.Clone()
		child.apply(p)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Child returns a copy of g with p applied, leaving g unchanged.
func (g *Game) Child(p Play) (*Game, error) {
	child := g.Clone()
	if _, err := child.Play(p); err != nil {
		return nil, err
	}
	return child, nil
}
