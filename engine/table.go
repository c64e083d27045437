package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/minaorangina/cardtable/crazy8"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/protocol"
	"github.com/minaorangina/cardtable/solitaire"
	"github.com/minaorangina/cardtable/uno"
)

var ErrUnsupportedCmd = errors.New("command not supported by this game")

// Table is a game in progress as the control loop sees it: commands in,
// snapshots out.
type Table interface {
	Variant() protocol.Variant
	Handle(msg protocol.InboundMessage, now time.Time) error
	// Tick lets time-driven parts of the game move on. It reports whether
	// anything changed.
	Tick(now time.Time) bool
	Over() bool
	Snapshot() protocol.OutboundMessage
}

// TableOpts configures a new table.
type TableOpts struct {
	Rand     *rand.Rand
	CPUDelay time.Duration
}

// NewTable deals a fresh game of variant.
func NewTable(variant protocol.Variant, opts TableOpts) (Table, error) {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch variant {
	case protocol.CrazyEights:
		g, err := crazy8.NewGame(crazy8.Opts{Rand: opts.Rand, CPUDelay: opts.CPUDelay})
		if err != nil {
			return nil, err
		}
		return NewCrazyEightsTable(g), nil

	case protocol.Uno:
		g, err := uno.NewGame(uno.Opts{Rand: opts.Rand, CPUDelay: opts.CPUDelay})
		if err != nil {
			return nil, err
		}
		return NewUnoTable(g), nil

	case protocol.Solitaire:
		return NewSolitaireTable(solitaire.New(opts.Rand)), nil
	}

	return nil, fmt.Errorf("%w: %q", protocol.ErrUnknownVariant, variant)
}

type sheddingTable[C comparable, S comparable] struct {
	variant  protocol.Variant
	game     *game.Shedding[C, S]
	view     func(C) protocol.CardView
	showSuit func(S) string
	callUno  bool
}

func NewCrazyEightsTable(g *crazy8.Game) Table {
	return &sheddingTable[deck.Card, deck.Suit]{
		variant:  protocol.CrazyEights,
		game:     g,
		view:     frenchCardView,
		showSuit: func(s deck.Suit) string { return s.String() },
	}
}

func NewUnoTable(g *uno.Game) Table {
	return &sheddingTable[uno.Card, uno.Colour]{
		variant:  protocol.Uno,
		game:     g,
		view:     unoCardView,
		showSuit: func(c uno.Colour) string { return c.String() },
		callUno:  true,
	}
}

func (t *sheddingTable[C, S]) Variant() protocol.Variant {
	return t.variant
}

func (t *sheddingTable[C, S]) Handle(msg protocol.InboundMessage, now time.Time) error {
	switch msg.Command {
	case protocol.Play:
		return t.game.Play(game.Player, msg.Card, now)
	case protocol.Draw:
		return t.game.Draw(game.Player, now)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedCmd, msg.Command)
}

func (t *sheddingTable[C, S]) Tick(now time.Time) bool {
	return t.game.Tick(now)
}

func (t *sheddingTable[C, S]) Over() bool {
	return t.game.Over()
}

func (t *sheddingTable[C, S]) Snapshot() protocol.OutboundMessage {
	g := t.game
	top := t.view(g.Top())

	msg := protocol.OutboundMessage{
		Command:       protocol.Snapshot,
		Variant:       t.variant,
		Message:       g.Message(),
		State:         g.State().String(),
		Over:          g.Over(),
		DeckCount:     g.DeckCount(),
		Hand:          []protocol.CardView{},
		Playable:      []int{},
		OpponentCount: len(g.Hand(game.CPU)),
		Top:           &top,
		Active:        t.showSuit(g.Active()),
	}

	for _, c := range g.Hand(game.Player) {
		msg.Hand = append(msg.Hand, t.view(c))
	}
	if g.State() == game.PlayerTurn {
		msg.Playable = g.Playable(game.Player)
	}

	if t.callUno {
		for _, seat := range game.Seats {
			if len(g.Hand(seat)) == 1 {
				msg.Uno = append(msg.Uno, seat.String())
			}
		}
	}

	if seat, ok := g.Winner(); ok {
		msg.Command = protocol.GameOver
		msg.Winner = seat.String()
	}

	return msg
}

type solitaireTable struct {
	game *solitaire.Game
}

func NewSolitaireTable(g *solitaire.Game) Table {
	return &solitaireTable{game: g}
}

func (t *solitaireTable) Variant() protocol.Variant {
	return protocol.Solitaire
}

func (t *solitaireTable) Handle(msg protocol.InboundMessage, _ time.Time) error {
	g := t.game

	switch msg.Command {
	case protocol.Select:
		idx := msg.Card
		if msg.Pile.Kind == solitaire.Waste {
			// only the top of the waste is ever selectable
			idx = len(g.Waste()) - 1
		}
		return g.Select(msg.Pile, idx)
	case protocol.Move:
		return g.MoveSelectionTo(msg.Pile)
	case protocol.Clear:
		g.ClearSelection()
		return nil
	case protocol.Draw:
		return g.DrawStock()
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedCmd, msg.Command)
}

// Tick never changes a solitaire game; win detection is done on every
// snapshot instead.
func (t *solitaireTable) Tick(time.Time) bool {
	return false
}

func (t *solitaireTable) Over() bool {
	return t.game.Won()
}

func (t *solitaireTable) Snapshot() protocol.OutboundMessage {
	g := t.game

	msg := protocol.OutboundMessage{
		Command:    protocol.Snapshot,
		Variant:    protocol.Solitaire,
		State:      "Playing",
		DeckCount:  len(g.Stock()),
		Tableau:    make([][]protocol.CardView, solitaire.NumTableau),
		Foundation: make([][]protocol.CardView, solitaire.NumFoundation),
		Waste:      slotViews(g.Waste()),
	}

	for i := range msg.Tableau {
		msg.Tableau[i] = slotViews(g.Tableau(i))
	}
	for i := range msg.Foundation {
		msg.Foundation[i] = slotViews(g.Foundation(i))
	}
	if sel, ok := g.Selection(); ok {
		msg.Selection = &sel
	}

	if g.Won() {
		msg.Command = protocol.GameOver
		msg.State = "Won"
		msg.Over = true
		msg.Winner = game.Player.String()
		msg.Message = "YOU WIN!"
	}

	return msg
}

func frenchCardView(c deck.Card) protocol.CardView {
	return protocol.CardView{
		Label:  c.Short(),
		Colour: strings.ToLower(c.Colour().String()),
		FaceUp: true,
	}
}

func unoCardView(c uno.Card) protocol.CardView {
	return protocol.CardView{
		Label:  c.String(),
		Colour: strings.ToLower(c.Colour.String()),
		FaceUp: true,
	}
}

func slotViews(slots []solitaire.Slot) []protocol.CardView {
	views := make([]protocol.CardView, 0, len(slots))
	for _, s := range slots {
		if !s.FaceUp {
			views = append(views, protocol.CardView{Label: "##"})
			continue
		}
		views = append(views, frenchCardView(s.Card))
	}
	return views
}
