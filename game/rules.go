package game

import "fmt"

// EffectKind tags the side effect a played card has on the turn.
type EffectKind int

const (
	Continue     EffectKind = iota // turn passes normally
	SkipOpponent                   // the acting seat goes again
	ForceDraw                      // the opponent draws, then the acting seat goes again
)

// Effect is the result of applying a card to the discard pile.
// A card triggers at most one effect; effects never stack.
type Effect struct {
	Kind EffectKind
	Draw int
}

// Skips reports whether the opponent loses their turn.
func (e Effect) Skips() bool {
	return e.Kind != Continue
}

func (e Effect) String() string {
	switch e.Kind {
	case SkipOpponent:
		return "Skip"
	case ForceDraw:
		return fmt.Sprintf("Draw %d", e.Draw)
	}
	return "Continue"
}

// Rules is what a shedding variant supplies to the turn resolver.
// C is the variant's card type, S its suit-like matching attribute
// (suit for Crazy Eights, colour for UNO).
type Rules[C comparable, S comparable] interface {
	// NewDeck returns every card of the variant, unshuffled.
	NewDeck() []C
	// HandSize is the number of cards dealt to each seat.
	HandSize() int
	// Opening draws the first discard from the stock.
	Opening(stock *Pile[C]) (C, bool)
	// Legal reports whether card may be played onto top while active is in force.
	Legal(card, top C, active S) bool
	// Natural is the card's own suit or colour.
	Natural(card C) S
	// Nominates reports whether seat chooses the active suit or colour when playing card.
	Nominates(card C, seat Seat) bool
	// Nominate picks the active suit or colour from the hand left after playing card.
	Nominate(card C, hand []C) S
	// Effect is the side effect of card once it is on the discard pile.
	Effect(card C) Effect
}
