// Package solitaire is single-player Klondike: seven tableau piles, four
// foundations, and a stock that turns one card at a time onto the waste.
package solitaire

import (
	"errors"
	"math/rand"

	"github.com/minaorangina/cardtable/deck"
)

var (
	ErrInvalidPile      = errors.New("no such pile")
	ErrInvalidSelection = errors.New("card cannot be selected")
	ErrNoSelection      = errors.New("nothing selected")
	ErrIllegalMove      = errors.New("illegal move")
	ErrEmptySource      = errors.New("stock and waste are both empty")
)

// Game is a Klondike session. It has no turns: every command is applied
// immediately or rejected. It is not safe for concurrent use.
type Game struct {
	tableau    [NumTableau][]Slot
	foundation [NumFoundation][]Slot
	stock      []Slot
	waste      []Slot
	selection  *Selection
}

// Opts lays out an existing game.
type Opts struct {
	Tableau    [NumTableau][]Slot
	Foundation [NumFoundation][]Slot
	Stock      []Slot
	Waste      []Slot
}

// New shuffles a fresh deck with rng and deals it.
func New(rng *rand.Rand) *Game {
	d := deck.New()
	d.Shuffle(rng)
	return Deal(d)
}

// Deal lays d out from the top: pile i gets i+1 cards with only the last
// face up, and the rest become the stock.
func Deal(d deck.Deck) *Game {
	g := &Game{}
	for i := 0; i < NumTableau; i++ {
		for j := 0; j <= i; j++ {
			card, ok := d.Draw()
			if !ok {
				break
			}
			g.tableau[i] = append(g.tableau[i], Slot{Card: card, FaceUp: i == j})
		}
	}

	g.stock = make([]Slot, 0, len(d))
	for _, card := range d {
		g.stock = append(g.stock, Slot{Card: card})
	}
	return g
}

// Existing restores a game from opts.
func Existing(opts Opts) *Game {
	g := &Game{
		stock: copySlots(opts.Stock),
		waste: copySlots(opts.Waste),
	}
	for i := range opts.Tableau {
		g.tableau[i] = copySlots(opts.Tableau[i])
	}
	for i := range opts.Foundation {
		g.foundation[i] = copySlots(opts.Foundation[i])
	}
	return g
}

func (g *Game) pile(ref PileRef) *[]Slot {
	switch ref.Kind {
	case Tableau:
		return &g.tableau[ref.Index]
	case Foundation:
		return &g.foundation[ref.Index]
	case Stock:
		return &g.stock
	}
	return &g.waste
}

// Select picks up the card at index of ref along with everything above it.
// Only face-up tableau cards and the top of the waste can be selected. A
// rejected selection clears any previous one.
func (g *Game) Select(ref PileRef, index int) error {
	g.selection = nil

	if !ref.valid() {
		return ErrInvalidPile
	}

	pile := *g.pile(ref)
	if index < 0 || index >= len(pile) {
		return ErrInvalidSelection
	}

	switch ref.Kind {
	case Tableau:
		if !pile[index].FaceUp {
			return ErrInvalidSelection
		}
	case Waste:
		if index != len(pile)-1 {
			return ErrInvalidSelection
		}
	default:
		return ErrInvalidSelection
	}

	g.selection = &Selection{Pile: ref, Index: index}
	return nil
}

func (g *Game) ClearSelection() {
	g.selection = nil
}

// Selection returns the current selection, if any.
func (g *Game) Selection() (Selection, bool) {
	if g.selection == nil {
		return Selection{}, false
	}
	return *g.selection, true
}

// MoveSelectionTo moves the selected card, and the run above it, onto
// target. The selection is cleared whether or not the move is legal.
func (g *Game) MoveSelectionTo(target PileRef) error {
	if g.selection == nil {
		return ErrNoSelection
	}
	sel := *g.selection
	g.selection = nil

	if !target.valid() {
		return ErrInvalidPile
	}
	if target == sel.Pile {
		return ErrIllegalMove
	}

	source := g.pile(sel.Pile)
	dest := g.pile(target)
	run := (*source)[sel.Index:]

	switch target.Kind {
	case Tableau:
		if !CanBuild(run[0].Card, *dest) {
			return ErrIllegalMove
		}
	case Foundation:
		if len(run) != 1 || !CanFound(run[0].Card, *dest) {
			return ErrIllegalMove
		}
	default:
		return ErrIllegalMove
	}

	*dest = append(*dest, run...)
	*source = (*source)[:sel.Index:sel.Index]

	if sel.Pile.Kind == Tableau {
		flipTop(*source)
	}
	return nil
}

func flipTop(pile []Slot) {
	if n := len(pile); n > 0 && !pile[n-1].FaceUp {
		pile[n-1].FaceUp = true
	}
}

// DrawStock turns the top stock card face up onto the waste. With the stock
// empty, the waste is turned back over to become the stock again: reversed,
// face down. The selection is cleared.
func (g *Game) DrawStock() error {
	g.selection = nil

	if n := len(g.stock); n > 0 {
		slot := g.stock[n-1]
		slot.FaceUp = true
		g.stock = g.stock[:n-1:n-1]
		g.waste = append(g.waste, slot)
		return nil
	}

	if len(g.waste) == 0 {
		return ErrEmptySource
	}

	stock := make([]Slot, 0, len(g.waste))
	for i := len(g.waste) - 1; i >= 0; i-- {
		stock = append(stock, Slot{Card: g.waste[i].Card})
	}
	g.stock = stock
	g.waste = []Slot{}
	return nil
}

// Won reports whether every foundation holds a full suit.
func (g *Game) Won() bool {
	for _, f := range g.foundation {
		if len(f) != len(deck.Ranks) {
			return false
		}
	}
	return true
}

// Tableau returns a copy of tableau pile i, bottom first.
func (g *Game) Tableau(i int) []Slot {
	return copySlots(g.tableau[i])
}

// Foundation returns a copy of foundation pile i, bottom first.
func (g *Game) Foundation(i int) []Slot {
	return copySlots(g.foundation[i])
}

func (g *Game) Stock() []Slot {
	return copySlots(g.stock)
}

func (g *Game) Waste() []Slot {
	return copySlots(g.waste)
}

// Cards returns every card on the table.
func (g *Game) Cards() []deck.Card {
	all := make([]deck.Card, 0, deck.Size)
	for _, p := range g.tableau {
		all = append(all, cardsOf(p)...)
	}
	for _, p := range g.foundation {
		all = append(all, cardsOf(p)...)
	}
	all = append(all, cardsOf(g.stock)...)
	return append(all, cardsOf(g.waste)...)
}
