package sketch

// HitTest returns the first gate, in insertion order, whose bounds contain
// (px, py). When gates overlap the earliest placed one wins, even though a
// later one is drawn on top.
func HitTest(s *Store, px, py float64) (Gate, bool) {
	if s == nil {
		return Gate{}, false
	}
	for _, g := range s.gates {
		if g.Bounds().Contains(px, py) {
			return g, true
		}
	}
	return Gate{}, false
}
