package game

// ChooseMove is the CPU policy: it scans hand in order and returns the
// index of the first card legal accepts. ok is false when nothing is
// playable and the CPU must draw.
func ChooseMove[C any](hand []C, legal func(C) bool) (idx int, ok bool) {
	for i, c := range hand {
		if legal(c) {
			return i, true
		}
	}
	return -1, false
}
