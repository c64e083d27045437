package uno

import "github.com/minaorangina/cardtable/game"

// HandSize is the number of cards dealt to each seat.
const HandSize = 7

// Legal reports whether card may be played onto top while active is the
// colour in force.
func Legal(card, top Card, active Colour) bool {
	if card.IsWild() {
		return true
	}
	if card.Colour == active {
		return true
	}
	return card.Value == top.Value
}

// BestColour picks the colour a wild should call: the most common colour
// in hand, ignoring wild cards. Ties go to the earlier colour in Colours;
// a hand without coloured cards calls Red.
func BestColour(hand []Card) Colour {
	colours := make([]Colour, 0, len(hand))
	for _, c := range hand {
		if !c.IsWild() {
			colours = append(colours, c.Colour)
		}
	}
	return game.Plurality(colours, Colours, Red)
}

// Rules plugs UNO into the shedding-game resolver.
type Rules struct{}

func (Rules) NewDeck() []Card {
	return NewDeck()
}

func (Rules) HandSize() int {
	return HandSize
}

// Opening draws the first discard. Wild cards go back under the deck and
// another card is drawn.
func (Rules) Opening(stock *game.Pile[Card]) (Card, bool) {
	// bounded so a deck of nothing but wilds cannot spin forever
	for i := len(*stock); i > 0; i-- {
		card, ok := stock.Draw()
		if !ok {
			return card, false
		}
		if !card.IsWild() {
			return card, true
		}
		stock.PutBottom(card)
	}
	return Card{}, false
}

func (Rules) Legal(card, top Card, active Colour) bool {
	return Legal(card, top, active)
}

func (Rules) Natural(card Card) Colour {
	return card.Colour
}

// Nominates is true for wilds whoever plays them.
func (Rules) Nominates(card Card, _ game.Seat) bool {
	return card.IsWild()
}

func (Rules) Nominate(_ Card, hand []Card) Colour {
	return BestColour(hand)
}

// Effect collapses Reverse into Skip: with two seats they are the same.
func (Rules) Effect(card Card) game.Effect {
	switch card.Value {
	case Skip, Reverse:
		return game.Effect{Kind: game.SkipOpponent}
	case DrawTwo:
		return game.Effect{Kind: game.ForceDraw, Draw: 2}
	case DrawFour:
		return game.Effect{Kind: game.ForceDraw, Draw: 4}
	}
	return game.Effect{Kind: game.Continue}
}

// Game is a session of UNO against the CPU.
type Game = game.Shedding[Card, Colour]

// Opts seeds an UNO session.
type Opts = game.Opts[Card, Colour]

// NewGame starts or restores a game of UNO.
func NewGame(opts Opts) (*Game, error) {
	return game.New[Card, Colour](Rules{}, opts)
}

// CallsUno reports whether seat is down to its last card.
func CallsUno(g *Game, seat game.Seat) bool {
	return len(g.Hand(seat)) == 1
}
