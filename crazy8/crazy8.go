// Package crazy8 is Crazy Eights against a CPU on a 52-card deck.
package crazy8

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 5

// Legal reports whether card may be played onto top while active is the
// suit in force. Eights are always playable.
func Legal(card, top deck.Card, active deck.Suit) bool {
	return card.Rank == deck.Eight || card.Suit == active || card.Rank == top.Rank
}

// Rules plugs Crazy Eights into the shedding-game resolver.
type Rules struct{}

func (Rules) NewDeck() []deck.Card {
	return deck.New()
}

func (Rules) HandSize() int {
	return HandSize
}

// Opening is the top card of the stock, whatever it is.
func (Rules) Opening(stock *game.Pile[deck.Card]) (deck.Card, bool) {
	return stock.Draw()
}

func (Rules) Legal(card, top deck.Card, active deck.Suit) bool {
	return Legal(card, top, active)
}

func (Rules) Natural(card deck.Card) deck.Suit {
	return card.Suit
}

// Nominates is true only for an eight played by the CPU. A human eight
// keeps its own suit.
func (Rules) Nominates(card deck.Card, seat game.Seat) bool {
	return card.Rank == deck.Eight && seat == game.CPU
}

// Nominate calls the most common suit left in hand, or the eight's own
// suit when the hand is empty.
func (Rules) Nominate(card deck.Card, hand []deck.Card) deck.Suit {
	suits := make([]deck.Suit, 0, len(hand))
	for _, c := range hand {
		suits = append(suits, c.Suit)
	}
	return game.Plurality(suits, deck.Suits, card.Suit)
}

func (Rules) Effect(deck.Card) game.Effect {
	return game.Effect{Kind: game.Continue}
}

// Game is a session of Crazy Eights against the CPU.
type Game = game.Shedding[deck.Card, deck.Suit]

// Opts seeds a Crazy Eights session.
type Opts = game.Opts[deck.Card, deck.Suit]

// NewGame starts or restores a game of Crazy Eights.
func NewGame(opts Opts) (*Game, error) {
	return game.New[deck.Card, deck.Suit](Rules{}, opts)
}
