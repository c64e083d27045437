package uno

import "fmt"

// Colour of an UNO card. Wild cards carry the Wild colour.
type Colour int

const (
	Red Colour = iota
	Green
	Blue
	Yellow
	Wild
)

var colourNames = []string{"Red", "Green", "Blue", "Yellow", "Wild"}

// Colours are the four playable colours, in tie-break order.
var Colours = []Colour{Red, Green, Blue, Yellow}

func (c Colour) String() string {
	if c < Red || c > Wild {
		return fmt.Sprintf("Colour(%d)", int(c))
	}
	return colourNames[c]
}

// Value is the face of an UNO card. Values are opaque tokens: matching is
// by identity, never numeric.
type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	WildCard
	DrawFour
)

var valueNames = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "Skip", "Rev", "+2", "Wild", "+4"}

func (v Value) String() string {
	if v < Zero || v > DrawFour {
		return fmt.Sprintf("Value(%d)", int(v))
	}
	return valueNames[v]
}

// Card is a single UNO card.
type Card struct {
	Colour Colour `json:"colour"`
	Value  Value  `json:"value"`
}

func (c Card) String() string {
	if c.Colour == Wild {
		if c.Value == DrawFour {
			return "Wild +4"
		}
		return "Wild"
	}
	return fmt.Sprintf("%s %s", c.Colour, c.Value)
}

// IsWild reports whether the card can be played on anything.
func (c Card) IsWild() bool {
	return c.Colour == Wild
}

// DeckSize is the number of cards in a full UNO deck.
const DeckSize = 108

// NewDeck returns a full, unshuffled deck: per colour one 0 and two of
// every other coloured value, then four Wild and four Wild +4.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, colour := range Colours {
		cards = append(cards, Card{colour, Zero})
		for v := One; v <= DrawTwo; v++ {
			cards = append(cards, Card{colour, v}, Card{colour, v})
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, Card{Wild, WildCard}, Card{Wild, DrawFour})
	}
	return cards
}
