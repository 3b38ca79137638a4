package heightmap

// StepRule decides whether a move from one square into an adjacent one is
// allowed. Rules must be pure: they are shared by concurrent searches.
type StepRule func(from, to Cell) bool

// CanStep is the climbing rule: the destination may be at most one level
// higher than the origin, any amount lower, and never the Start square.
// Start climbs as 'a' and End is entered as 'z', so End is reachable only
// from 'y' or 'z'.
func CanStep(from, to Cell) bool {
	if to.kind == Start {
		return false
	}
	return to.Elevation() <= from.Elevation()+1
}

// IsLowest reports whether c has the lowest effective elevation.
// The Start square qualifies as well as every Ground('a').
func IsLowest(c Cell) bool {
	return c.Elevation() == Lowest
}
