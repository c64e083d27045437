package solitaire

import "github.com/minaorangina/cardtable/deck"

// CanBuild reports whether a run whose bottom card is bottom may be laid
// on target. An empty pile takes only a King; otherwise colours alternate
// and ranks descend by one. The rest of the run is not checked: runs are
// only ever built by legal moves.
func CanBuild(bottom deck.Card, target []Slot) bool {
	if len(target) == 0 {
		return bottom.Rank == deck.King
	}
	top := target[len(target)-1].Card
	if top.Colour() == bottom.Colour() {
		return false
	}
	return top.Rank.Ordinal() == bottom.Rank.Ordinal()+1
}

// CanFound reports whether card may go onto foundation pile target:
// an Ace onto an empty pile, or the next rank of the same suit.
func CanFound(card deck.Card, target []Slot) bool {
	if len(target) == 0 {
		return card.Rank == deck.Ace
	}
	top := target[len(target)-1].Card
	if top.Suit != card.Suit {
		return false
	}
	return top.Rank.Ordinal() == card.Rank.Ordinal()-1
}
