package game

// Pile is an ordered stack of cards; the top is the last element.
type Pile[C any] []C

// Draw removes and returns the top card. ok is false for an empty pile.
func (p *Pile[C]) Draw() (card C, ok bool) {
	n := len(*p)
	if n == 0 {
		return card, false
	}
	card = (*p)[n-1]
	*p = (*p)[:n-1]
	return card, true
}

// PutBottom slides card underneath the pile.
func (p *Pile[C]) PutBottom(card C) {
	*p = append(Pile[C]{card}, *p...)
}

// Plurality returns the value occurring most often in values. Ties go to
// whichever value comes first in order; values absent from order are ignored.
// An empty count yields fallback.
func Plurality[S comparable](values []S, order []S, fallback S) S {
	counts := map[S]int{}
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := fallback, 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// removeAt returns cards without the element at idx, keeping order.
func removeAt[C any](cards []C, idx int) []C {
	out := make([]C, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	return append(out, cards[idx+1:]...)
}

func copyCards[C any](cards []C) []C {
	out := make([]C, len(cards))
	copy(out, cards)
	return out
}
