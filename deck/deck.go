package deck

import "math/rand"

// Size is the number of cards in a full deck.
const Size = 52

// Deck represents a deck of cards.
// The top of the deck is the last element.
type Deck []Card

// New creates a deck of cards, one of each rank and suit, in suit order
func New() Deck {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards with the given source of randomness
func (d *Deck) Shuffle(rng *rand.Rand) {
	Shuffle(*d, rng)
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	n := len(*d)
	if n == 0 {
		return Card{}, false
	}
	card = (*d)[n-1]
	*d = (*d)[:n-1]
	return card, true
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}

// Shuffle permutes cards in place (Fisher–Yates) using rng.
func Shuffle[C any](cards []C, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
