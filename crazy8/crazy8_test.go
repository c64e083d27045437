package crazy8

import (
	"math/rand"
	"testing"
	"time"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func c(r deck.Rank, s deck.Suit) deck.Card {
	return deck.NewCard(r, s)
}

func TestLegal(t *testing.T) {
	top := c(deck.Seven, deck.Clubs)

	t.Run("eight is universal", func(t *testing.T) {
		utils.AssertTrue(t, Legal(c(deck.Eight, deck.Diamonds), top, deck.Clubs))
	})

	t.Run("matching suit", func(t *testing.T) {
		utils.AssertTrue(t, Legal(c(deck.King, deck.Clubs), top, deck.Clubs))
	})

	t.Run("matching rank", func(t *testing.T) {
		utils.AssertTrue(t, Legal(c(deck.Seven, deck.Hearts), top, deck.Clubs))
	})

	t.Run("active suit wins over the top card's suit", func(t *testing.T) {
		utils.AssertTrue(t, Legal(c(deck.Two, deck.Spades), top, deck.Spades))
		utils.AssertFalse(t, Legal(c(deck.Two, deck.Clubs), top, deck.Spades))
	})

	t.Run("no match", func(t *testing.T) {
		utils.AssertFalse(t, Legal(c(deck.Queen, deck.Hearts), top, deck.Clubs))
	})
}

func TestEights(t *testing.T) {
	t.Run("a human eight keeps its own suit", func(t *testing.T) {
		g, err := NewGame(Opts{
			PlayerHand: []deck.Card{c(deck.Eight, deck.Diamonds), c(deck.Two, deck.Spades), c(deck.Three, deck.Spades)},
			CPUHand:    []deck.Card{c(deck.Four, deck.Hearts)},
			Discard:    []deck.Card{c(deck.Seven, deck.Clubs)},
		})
		require.NoError(t, err)

		utils.AssertNoError(t, g.Play(game.Player, 0, now))

		utils.AssertEqual(t, g.Active(), deck.Diamonds)
		utils.AssertEqual(t, g.State(), game.CPUPending)
	})

	t.Run("a CPU eight calls its most common suit", func(t *testing.T) {
		g, err := NewGame(Opts{
			PlayerHand: []deck.Card{c(deck.Four, deck.Hearts)},
			CPUHand:    []deck.Card{c(deck.Eight, deck.Diamonds), c(deck.Two, deck.Spades), c(deck.Three, deck.Spades), c(deck.Jack, deck.Hearts)},
			Discard:    []deck.Card{c(deck.Seven, deck.Clubs)},
			State:      game.CPUTurn,
		})
		require.NoError(t, err)

		utils.AssertTrue(t, g.Tick(now))

		utils.AssertEqual(t, g.Top(), c(deck.Eight, deck.Diamonds))
		utils.AssertEqual(t, g.Active(), deck.Spades)
		utils.AssertEqual(t, g.State(), game.PlayerTurn)
	})

	t.Run("a CPU's last eight keeps its own suit", func(t *testing.T) {
		g, err := NewGame(Opts{
			PlayerHand: []deck.Card{c(deck.Four, deck.Hearts)},
			CPUHand:    []deck.Card{c(deck.Eight, deck.Diamonds)},
			Discard:    []deck.Card{c(deck.Seven, deck.Clubs)},
			State:      game.CPUTurn,
		})
		require.NoError(t, err)

		g.Tick(now)

		utils.AssertEqual(t, g.Active(), deck.Diamonds)
		seat, ok := g.Winner()
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, seat, game.CPU)
		utils.AssertEqual(t, g.Message(), "CPU WINS!")
	})
}

func TestGame(t *testing.T) {
	t.Run("new game deals five each", func(t *testing.T) {
		g, err := NewGame(Opts{Rand: rand.New(rand.NewSource(9))})
		require.NoError(t, err)

		utils.AssertEqual(t, len(g.Hand(game.Player)), HandSize)
		utils.AssertEqual(t, len(g.Hand(game.CPU)), HandSize)
		utils.AssertEqual(t, g.DeckCount(), deck.Size-2*HandSize-1)
		utils.AssertEqual(t, g.Active(), g.Top().Suit)
	})

	t.Run("turns alternate and cards are conserved", func(t *testing.T) {
		g, err := NewGame(Opts{Rand: rand.New(rand.NewSource(11))})
		require.NoError(t, err)

		clock := now
		for i := 0; i < 500 && !g.Over(); i++ {
			clock = clock.Add(time.Second)
			if g.State() == game.PlayerTurn {
				if idxs := g.Playable(game.Player); len(idxs) > 0 {
					require.NoError(t, g.Play(game.Player, idxs[0], clock))
				} else {
					require.NoError(t, g.Draw(game.Player, clock))
				}
				if !g.Over() {
					utils.AssertEqual(t, g.State(), game.CPUPending)
				}
			} else {
				require.True(t, g.Tick(clock))
				if !g.Over() {
					utils.AssertEqual(t, g.State(), game.PlayerTurn)
				}
			}

			assert.ElementsMatch(t, deck.New(), g.Cards())
		}
	})
}
