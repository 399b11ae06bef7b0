package ordering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories/clock"
)

func TestGeneratorNext(t *testing.T) {
	t.Run("keys are epoch millis plus fraction", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		g := NewSeededGenerator(clock.NewMock(now), func() float64 { return 0.25 })

		assert.Equal(t, float64(now.UnixMilli())+0.25, g.Next())
	})

	t.Run("strictly increasing even when the clock stalls", func(t *testing.T) {
		g := NewSeededGenerator(clock.NewMock(time.Unix(1700000000, 0)), func() float64 { return 0.5 })

		first := g.Next()
		second := g.Next()
		third := g.Next()
		assert.Greater(t, second, first)
		assert.Greater(t, third, second)
	})

	t.Run("strictly increasing when the clock steps backwards", func(t *testing.T) {
		mock := clock.NewMock(time.Unix(1700000000, 0))
		g := NewSeededGenerator(mock, func() float64 { return 0.5 })

		first := g.Next()
		mock.Advance(-time.Hour)
		assert.Greater(t, g.Next(), first)
	})
}

func TestSwapOrders(t *testing.T) {
	t.Run("distinct orders are exchanged", func(t *testing.T) {
		swapped := SwapOrders(3, 7, models.MoveDirectionDown)
		assert.Equal(t, Swapped{Current: 7, Target: 3}, swapped)

		swapped = SwapOrders(3, 7, models.MoveDirectionUp)
		assert.Equal(t, Swapped{Current: 7, Target: 3}, swapped)
	})

	t.Run("equal orders moving up are perturbed apart", func(t *testing.T) {
		swapped := SwapOrders(5, 5, models.MoveDirectionUp)
		assert.Equal(t, 5-0.0001, swapped.Current)
		assert.Equal(t, 5+0.0001, swapped.Target)
	})

	t.Run("equal orders moving down are perturbed apart", func(t *testing.T) {
		swapped := SwapOrders(5, 5, models.MoveDirectionDown)
		assert.Equal(t, 5+0.0001, swapped.Current)
		assert.Equal(t, 5-0.0001, swapped.Target)
	})
}
