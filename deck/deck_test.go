package deck

import (
	"math/rand"
	"testing"

	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
)

func TestDeck(t *testing.T) {
	t.Run("new deck holds every card once", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d), Size)

		seen := map[Card]struct{}{}
		for _, c := range d {
			seen[c] = struct{}{}
		}
		utils.AssertEqual(t, len(seen), Size)
	})

	t.Run("shuffle permutes without losing cards", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(7)))

		utils.AssertEqual(t, len(d), Size)
		assert.ElementsMatch(t, New(), d)
		assert.NotEqual(t, New(), d)
	})

	t.Run("shuffle is reproducible for a seed", func(t *testing.T) {
		a, b := New(), New()
		a.Shuffle(rand.New(rand.NewSource(42)))
		b.Shuffle(rand.New(rand.NewSource(42)))
		utils.AssertDeepEqual(t, a, b)
	})

	t.Run("draw takes from the top", func(t *testing.T) {
		d := Deck{NewCard(Two, Clubs), NewCard(Three, Hearts)}

		c, ok := d.Draw()
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, c, NewCard(Three, Hearts))
		utils.AssertEqual(t, len(d), 1)

		_, ok = d.Draw()
		utils.AssertTrue(t, ok)

		_, ok = d.Draw()
		utils.AssertFalse(t, ok)
		utils.AssertEqual(t, len(d), 0)
	})

	t.Run("deal", func(t *testing.T) {
		d := New()
		top := d[len(d)-3:]
		want := append([]Card{}, top...)

		dealt := d.Deal(3)
		utils.AssertDeepEqual(t, dealt, want)
		utils.AssertEqual(t, len(d), Size-3)

		utils.AssertDeepEqual(t, d.Deal(Size), []Card{})
		utils.AssertDeepEqual(t, d.Deal(-1), []Card{})
	})
}
