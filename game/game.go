package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/cardtable/deck"
)

var (
	ErrNilRules       = errors.New("game has no rules")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrInvalidCard    = errors.New("no such card in hand")
	ErrNotEnoughCards = errors.New("not enough cards to deal")
	ErrInvalidState   = errors.New("invalid game state")
	ErrGameOver       = errors.New("game is already over")
)

// DefaultCPUDelay is how long the CPU "thinks" before acting.
const DefaultCPUDelay = time.Second

const (
	msgYourTurn    = "Your Turn"
	msgCPUThinking = "CPU Thinking..."
	msgYouWin      = "YOU WIN!"
	msgCPUWins     = "CPU WINS!"
)

// Shedding is a two-seat session of a shedding game: a human against a
// CPU, each trying to empty their hand onto a shared discard pile.
// It is not safe for concurrent use; a single control loop owns it.
type Shedding[C comparable, S comparable] struct {
	rules    Rules[C, S]
	deck     Pile[C]
	hands    [2][]C
	discard  Pile[C]
	active   S
	state    State
	readyAt  time.Time
	cpuDelay time.Duration
	winner   Seat
	message  string
}

// Opts seeds a session. The zero value starts a fresh game: a new deck
// shuffled with Rand, a full hand dealt to the player then the CPU, and
// an opening discard. Any cards set restore an existing game instead.
type Opts[C comparable, S comparable] struct {
	Rand       *rand.Rand
	Deck       []C
	PlayerHand []C
	CPUHand    []C
	Discard    []C
	Active     *S // defaults to the natural suit/colour of the top discard
	State      State
	ReadyAt    time.Time
	CPUDelay   time.Duration
}

func (o Opts[C, S]) existing() bool {
	return o.Deck != nil || o.PlayerHand != nil || o.CPUHand != nil || o.Discard != nil
}

// New constructs a session of the shedding game described by rules.
func New[C comparable, S comparable](rules Rules[C, S], opts Opts[C, S]) (*Shedding[C, S], error) {
	if rules == nil {
		return nil, ErrNilRules
	}

	g := &Shedding[C, S]{
		rules:    rules,
		cpuDelay: opts.CPUDelay,
		message:  msgYourTurn,
	}
	if g.cpuDelay <= 0 {
		g.cpuDelay = DefaultCPUDelay
	}

	if opts.existing() {
		return g, g.restore(opts)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.deck = Pile[C](rules.NewDeck())
	deck.Shuffle([]C(g.deck), rng)

	if len(g.deck) < 2*rules.HandSize()+1 {
		return nil, ErrNotEnoughCards
	}

	// initial deal, a full hand each
	for _, seat := range Seats {
		for i := 0; i < rules.HandSize(); i++ {
			card, _ := g.deck.Draw()
			g.hands[seat] = append(g.hands[seat], card)
		}
	}

	opening, ok := rules.Opening(&g.deck)
	if !ok {
		return nil, ErrNotEnoughCards
	}
	g.discard = Pile[C]{opening}
	g.active = rules.Natural(opening)
	g.state = PlayerTurn

	return g, nil
}

func (g *Shedding[C, S]) restore(opts Opts[C, S]) error {
	if len(opts.Discard) == 0 {
		return fmt.Errorf("%w: empty discard pile", ErrInvalidState)
	}
	if opts.State < PlayerTurn || opts.State > Terminal {
		return fmt.Errorf("%w: unknown state %d", ErrInvalidState, opts.State)
	}

	g.deck = Pile[C](copyCards(opts.Deck))
	g.hands[Player] = copyCards(opts.PlayerHand)
	g.hands[CPU] = copyCards(opts.CPUHand)
	g.discard = Pile[C](copyCards(opts.Discard))
	g.state = opts.State
	g.readyAt = opts.ReadyAt

	g.active = g.rules.Natural(g.discard[len(g.discard)-1])
	if opts.Active != nil {
		g.active = *opts.Active
	}

	switch g.state {
	case CPUPending, CPUTurn:
		g.message = msgCPUThinking
	}
	g.checkTerminal()

	return nil
}

// Play attempts to play the card at idx of seat's hand. A rejected play
// leaves the session untouched.
func (g *Shedding[C, S]) Play(seat Seat, idx int, now time.Time) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	hand := g.hands[seat]
	if idx < 0 || idx >= len(hand) {
		return ErrInvalidCard
	}

	card := hand[idx]
	if !g.Legal(card) {
		return ErrIllegalMove
	}

	g.hands[seat] = removeAt(hand, idx)
	g.discard = append(g.discard, card)

	if g.rules.Nominates(card, seat) {
		g.active = g.rules.Nominate(card, g.hands[seat])
	} else {
		g.active = g.rules.Natural(card)
	}

	effect := g.rules.Effect(card)
	if effect.Kind == ForceDraw {
		for i := 0; i < effect.Draw; i++ {
			g.drawInto(seat.Other())
		}
	}

	g.pass(seat, effect, now)
	g.checkTerminal()

	return nil
}

// Draw takes one card from the deck into seat's hand and ends the turn.
// An empty deck makes the draw itself a no-op; the turn still passes.
func (g *Shedding[C, S]) Draw(seat Seat, now time.Time) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	g.drawInto(seat)
	g.pass(seat, Effect{Kind: Continue}, now)
	g.checkTerminal()

	return nil
}

// Tick advances the CPU once its deadline has passed. It reports whether
// the CPU acted.
func (g *Shedding[C, S]) Tick(now time.Time) bool {
	if g.state == CPUPending {
		if now.Before(g.readyAt) {
			return false
		}
		g.state = CPUTurn
	}
	if g.state != CPUTurn {
		return false
	}

	idx, ok := ChooseMove(g.hands[CPU], g.Legal)
	if ok {
		// the policy only picks legal cards
		_ = g.Play(CPU, idx, now)
	} else {
		_ = g.Draw(CPU, now)
	}

	return true
}

func (g *Shedding[C, S]) checkTurn(seat Seat) error {
	if g.state == Terminal {
		return ErrGameOver
	}
	if seat == Player && g.state != PlayerTurn {
		return ErrNotYourTurn
	}
	if seat == CPU && g.state != CPUTurn {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Shedding[C, S]) drawInto(seat Seat) {
	if card, ok := g.deck.Draw(); ok {
		g.hands[seat] = append(g.hands[seat], card)
	}
}

// pass hands the turn over after seat acted. A skip-class effect keeps the
// turn with seat for exactly one more action.
func (g *Shedding[C, S]) pass(seat Seat, effect Effect, now time.Time) {
	next := seat.Other()
	if effect.Skips() {
		next = seat
	}

	if next == CPU {
		g.state = CPUPending
		g.readyAt = now.Add(g.cpuDelay)
	} else {
		g.state = PlayerTurn
	}

	g.message = turnMessage(seat, next, effect)
}

func turnMessage(seat, next Seat, effect Effect) string {
	if !effect.Skips() {
		if next == CPU {
			return msgCPUThinking
		}
		return msgYourTurn
	}

	skipped := seat.Other()
	switch {
	case effect.Kind == ForceDraw && skipped == CPU:
		return fmt.Sprintf("CPU Draw %d & Skipped!", effect.Draw)
	case effect.Kind == ForceDraw:
		return fmt.Sprintf("You Draw %d & Skipped!", effect.Draw)
	case skipped == CPU:
		return "CPU Skipped!"
	}
	return "You were Skipped!"
}

// checkTerminal ends the game once a hand is empty. The player's hand is
// checked first.
func (g *Shedding[C, S]) checkTerminal() {
	for _, seat := range Seats {
		if len(g.hands[seat]) == 0 {
			g.state = Terminal
			g.winner = seat
			g.message = msgCPUWins
			if seat == Player {
				g.message = msgYouWin
			}
			return
		}
	}
}

// Legal reports whether card may be played onto the discard pile now.
func (g *Shedding[C, S]) Legal(card C) bool {
	return g.rules.Legal(card, g.Top(), g.active)
}

// Playable returns the indices of seat's cards that may be played.
func (g *Shedding[C, S]) Playable(seat Seat) []int {
	idxs := []int{}
	for i, c := range g.hands[seat] {
		if g.Legal(c) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (g *Shedding[C, S]) State() State {
	return g.state
}

// ReadyAt is the CPU's deadline while the state is CPUPending.
func (g *Shedding[C, S]) ReadyAt() time.Time {
	return g.readyAt
}

// Hand returns a copy of seat's hand in order.
func (g *Shedding[C, S]) Hand(seat Seat) []C {
	return copyCards(g.hands[seat])
}

func (g *Shedding[C, S]) Top() C {
	return g.discard[len(g.discard)-1]
}

func (g *Shedding[C, S]) Active() S {
	return g.active
}

// Discard returns a copy of the discard pile, bottom first.
func (g *Shedding[C, S]) Discard() []C {
	return copyCards(g.discard)
}

func (g *Shedding[C, S]) DeckCount() int {
	return len(g.deck)
}

func (g *Shedding[C, S]) Over() bool {
	return g.state == Terminal
}

// Winner returns the seat that emptied its hand. ok is false until the
// game is over.
func (g *Shedding[C, S]) Winner() (seat Seat, ok bool) {
	if g.state != Terminal {
		return seat, false
	}
	return g.winner, true
}

// Message is a short status line describing the last transition.
func (g *Shedding[C, S]) Message() string {
	return g.message
}

// Cards returns every card in the session: deck, hands and discard.
func (g *Shedding[C, S]) Cards() []C {
	all := make([]C, 0, len(g.deck)+len(g.hands[Player])+len(g.hands[CPU])+len(g.discard))
	all = append(all, g.deck...)
	all = append(all, g.hands[Player]...)
	all = append(all, g.hands[CPU]...)
	return append(all, g.discard...)
}
