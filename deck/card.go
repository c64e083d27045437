package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankSymbols = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank, lowest first.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) String() string {
	return rankNames[r]
}

// Symbol is the short corner index of the rank, e.g. "Q" or "10".
func (r Rank) Symbol() string {
	return rankSymbols[r]
}

// Ordinal is the rank's position in an ascending run, Ace being 1 and King 13.
func (r Rank) Ordinal() int {
	return int(r) + 1
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

var suitSymbols = []string{"♥", "♦", "♣", "♠"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in enumeration order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	return suitNames[s]
}

// Symbol returns the pip character for the suit.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Colour returns the colour the suit is printed in.
func (s Suit) Colour() Colour {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Colour is the print colour of a suit
type Colour int

const (
	Black Colour = iota
	Red
)

func (c Colour) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Card represents a playing card.
// Cards are plain values: two cards are the same card when rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. It panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King || suit < Hearts || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// Colour returns the colour of the card's suit.
func (c Card) Colour() Colour {
	return c.Suit.Colour()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact form of the card, e.g. "10♥".
func (c Card) Short() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}
