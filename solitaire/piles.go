package solitaire

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
)

const (
	NumTableau    = 7
	NumFoundation = 4
)

// Slot is a card as it lies on the table.
type Slot struct {
	Card   deck.Card `json:"card"`
	FaceUp bool      `json:"face_up"`
}

func (s Slot) String() string {
	if !s.FaceUp {
		return "##"
	}
	return s.Card.Short()
}

// PileKind names a family of piles.
type PileKind int

const (
	Tableau PileKind = iota
	Foundation
	Stock
	Waste
)

var pileKindNames = []string{"Tableau", "Foundation", "Stock", "Waste"}

func (k PileKind) String() string {
	if k < Tableau || k > Waste {
		return fmt.Sprintf("PileKind(%d)", int(k))
	}
	return pileKindNames[k]
}

// PileRef identifies a pile by kind and index. Stock and waste have index 0.
type PileRef struct {
	Kind  PileKind `json:"kind"`
	Index int      `json:"index"`
}

var (
	StockPile = PileRef{Kind: Stock}
	WastePile = PileRef{Kind: Waste}
)

func TableauPile(i int) PileRef {
	return PileRef{Kind: Tableau, Index: i}
}

func FoundationPile(i int) PileRef {
	return PileRef{Kind: Foundation, Index: i}
}

func (r PileRef) String() string {
	switch r.Kind {
	case Stock, Waste:
		return r.Kind.String()
	}
	return fmt.Sprintf("%s %d", r.Kind, r.Index+1)
}

func (r PileRef) valid() bool {
	switch r.Kind {
	case Tableau:
		return r.Index >= 0 && r.Index < NumTableau
	case Foundation:
		return r.Index >= 0 && r.Index < NumFoundation
	case Stock, Waste:
		return r.Index == 0
	}
	return false
}

// Selection is a card picked up from a pile, with every card above it.
type Selection struct {
	Pile  PileRef `json:"pile"`
	Index int     `json:"index"`
}

func cardsOf(slots []Slot) []deck.Card {
	cards := make([]deck.Card, len(slots))
	for i, s := range slots {
		cards[i] = s.Card
	}
	return cards
}

func copySlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}
