package uno

import (
	"math/rand"
	"testing"
	"time"

	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewDeck(t *testing.T) {
	cards := NewDeck()
	utils.AssertEqual(t, len(cards), DeckSize)

	counts := map[Card]int{}
	for _, c := range cards {
		counts[c]++
	}

	utils.AssertEqual(t, counts[Card{Red, Zero}], 1)
	utils.AssertEqual(t, counts[Card{Blue, Seven}], 2)
	utils.AssertEqual(t, counts[Card{Yellow, Reverse}], 2)
	utils.AssertEqual(t, counts[Card{Green, DrawTwo}], 2)
	utils.AssertEqual(t, counts[Card{Wild, WildCard}], 4)
	utils.AssertEqual(t, counts[Card{Wild, DrawFour}], 4)
}

func TestLegal(t *testing.T) {
	top := Card{Blue, Five}

	tt := []struct {
		name   string
		card   Card
		active Colour
		want   bool
	}{
		{"wild on anything", Card{Wild, WildCard}, Blue, true},
		{"wild +4 on anything", Card{Wild, DrawFour}, Green, true},
		{"same colour", Card{Blue, Nine}, Blue, true},
		{"same value", Card{Red, Five}, Blue, true},
		{"active colour overrides top colour", Card{Green, One}, Green, true},
		{"no match", Card{Red, One}, Blue, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			utils.AssertEqual(t, Legal(tc.card, top, tc.active), tc.want)
		})
	}

	t.Run("action values match by identity", func(t *testing.T) {
		utils.AssertTrue(t, Legal(Card{Red, Skip}, Card{Blue, Skip}, Blue))
		utils.AssertFalse(t, Legal(Card{Red, DrawTwo}, Card{Blue, Skip}, Blue))
	})
}

func TestBestColour(t *testing.T) {
	utils.AssertEqual(t, BestColour([]Card{{Blue, Two}, {Yellow, One}, {Yellow, Three}}), Yellow)
	utils.AssertEqual(t, BestColour([]Card{{Yellow, One}, {Green, Three}}), Green)
	utils.AssertEqual(t, BestColour([]Card{{Wild, WildCard}}), Red)
	utils.AssertEqual(t, BestColour(nil), Red)
}

func TestOpening(t *testing.T) {
	t.Run("wilds go under the deck", func(t *testing.T) {
		stock := game.Pile[Card]{{Green, Four}, {Wild, DrawFour}, {Wild, WildCard}}

		card, ok := Rules{}.Opening(&stock)

		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, card, Card{Green, Four})
		utils.AssertDeepEqual(t, stock, game.Pile[Card]{{Wild, DrawFour}, {Wild, WildCard}})
	})

	t.Run("nothing but wilds", func(t *testing.T) {
		stock := game.Pile[Card]{{Wild, DrawFour}, {Wild, WildCard}}

		_, ok := Rules{}.Opening(&stock)

		utils.AssertFalse(t, ok)
		utils.AssertEqual(t, len(stock), 2)
	})
}

func TestGame(t *testing.T) {
	t.Run("new game deals seven each and never opens on a wild", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, err := NewGame(Opts{Rand: rand.New(rand.NewSource(seed))})
			require.NoError(t, err)

			utils.AssertEqual(t, len(g.Hand(game.Player)), 7)
			utils.AssertEqual(t, len(g.Hand(game.CPU)), 7)
			utils.AssertFalse(t, g.Top().IsWild())
			utils.AssertEqual(t, g.Active(), g.Top().Colour)
			utils.AssertEqual(t, len(g.Cards()), DeckSize)
		}
	})

	t.Run("CPU wild picks the plurality colour", func(t *testing.T) {
		t.Log("Given a CPU holding a wild and mostly red cards")
		g, err := NewGame(Opts{
			Deck:       []Card{{Green, One}},
			PlayerHand: []Card{{Yellow, Two}},
			CPUHand:    []Card{{Wild, WildCard}, {Red, Three}, {Red, Seven}, {Blue, Two}},
			Discard:    []Card{{Green, Nine}},
			State:      game.CPUTurn,
		})
		require.NoError(t, err)

		t.Log("When the CPU plays")
		utils.AssertTrue(t, g.Tick(now))

		t.Log("Then red is called")
		utils.AssertEqual(t, g.Top(), Card{Wild, WildCard})
		utils.AssertEqual(t, g.Active(), Red)
		utils.AssertEqual(t, g.State(), game.PlayerTurn)
	})

	t.Run("wild +4 makes the CPU draw four and keeps the player's turn", func(t *testing.T) {
		g, err := NewGame(Opts{
			Deck:       []Card{{Red, One}, {Red, Two}, {Blue, Three}, {Green, Four}, {Yellow, Five}},
			PlayerHand: []Card{{Wild, DrawFour}, {Blue, One}},
			CPUHand:    []Card{{Green, Six}, {Green, Seven}},
			Discard:    []Card{{Yellow, Nine}},
		})
		require.NoError(t, err)

		err = g.Play(game.Player, 0, now)

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(g.Hand(game.CPU)), 6)
		utils.AssertEqual(t, g.DeckCount(), 1)
		utils.AssertEqual(t, g.State(), game.PlayerTurn)
		utils.AssertEqual(t, g.Active(), Blue)
		utils.AssertEqual(t, g.Message(), "CPU Draw 4 & Skipped!")
	})

	t.Run("reverse acts as a skip", func(t *testing.T) {
		g, err := NewGame(Opts{
			PlayerHand: []Card{{Yellow, Reverse}, {Blue, One}},
			CPUHand:    []Card{{Green, Six}},
			Discard:    []Card{{Yellow, Nine}},
		})
		require.NoError(t, err)

		utils.AssertNoError(t, g.Play(game.Player, 0, now))

		utils.AssertEqual(t, g.State(), game.PlayerTurn)
		utils.AssertEqual(t, g.Message(), "CPU Skipped!")
		utils.AssertTrue(t, CallsUno(g, game.Player))
	})

	t.Run("CPU +2 makes the player draw and the CPU goes again", func(t *testing.T) {
		g, err := NewGame(Opts{
			Deck:       []Card{{Red, One}, {Red, Two}, {Red, Three}},
			PlayerHand: []Card{{Blue, One}},
			CPUHand:    []Card{{Yellow, DrawTwo}, {Yellow, Six}},
			Discard:    []Card{{Yellow, Nine}},
			State:      game.CPUPending,
			ReadyAt:    now,
		})
		require.NoError(t, err)

		g.Tick(now)

		utils.AssertEqual(t, len(g.Hand(game.Player)), 3)
		utils.AssertEqual(t, g.State(), game.CPUPending)
		utils.AssertEqual(t, g.ReadyAt(), now.Add(game.DefaultCPUDelay))

		g.Tick(now.Add(game.DefaultCPUDelay))

		utils.AssertEqual(t, g.State(), game.Terminal)
		seat, _ := g.Winner()
		utils.AssertEqual(t, seat, game.CPU)
	})

	t.Run("cards are conserved through a full game", func(t *testing.T) {
		g, err := NewGame(Opts{Rand: rand.New(rand.NewSource(3))})
		require.NoError(t, err)

		want := map[Card]int{}
		for _, c := range NewDeck() {
			want[c]++
		}

		clock := now
		for i := 0; i < 2000 && !g.Over(); i++ {
			clock = clock.Add(time.Second)
			if g.State() == game.PlayerTurn {
				if idxs := g.Playable(game.Player); len(idxs) > 0 {
					require.NoError(t, g.Play(game.Player, idxs[0], clock))
				} else {
					require.NoError(t, g.Draw(game.Player, clock))
				}
			} else {
				g.Tick(clock)
			}

			got := map[Card]int{}
			for _, c := range g.Cards() {
				got[c]++
			}
			assert.Equal(t, want, got)
		}
	})
}
