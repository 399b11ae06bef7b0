// Package ordering produces the float sort keys that position lists and items
// within their sibling collections. Render order is ascending order key.
package ordering

import (
	"math/rand"
	"sync"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories/clock"
)

// tieBreakDelta separates two records whose order keys collide, nudging each
// one just far enough that a subsequent swap is not a no-op.
const tieBreakDelta = 1e-4

// Generator issues strictly increasing order keys for one process. Keys are
// epoch milliseconds plus a random fraction, so concurrent clients rarely
// collide, and a collision only makes two records interleave arbitrarily.
type Generator struct {
	clock clock.Clock
	rand  func() float64

	mu   sync.Mutex
	last float64
}

func NewGenerator(c clock.Clock) *Generator {
	return &Generator{clock: c, rand: rand.Float64}
}

// NewSeededGenerator fixes the random fraction source, for tests.
func NewSeededGenerator(c clock.Clock, frac func() float64) *Generator {
	return &Generator{clock: c, rand: frac}
}

// Next returns an order key strictly greater than every key this generator
// has issued before, even if the wall clock stalls or steps backwards.
func (g *Generator) Next() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := float64(g.clock.Now().UnixMilli()) + g.rand()
	if key <= g.last {
		key = g.last + tieBreakDelta
	}
	g.last = key
	return key
}

// Swapped holds the pair of order keys resulting from a single-step reorder.
// Callers persist both values; SwapOrders never touches storage.
type Swapped struct {
	Current float64
	Target  float64
}

// SwapOrders exchanges the order keys of a record and its immediate neighbor
// in sorted order. Equal keys (an unmigrated tie) are perturbed by a small
// delta in the direction of the move so the two records become
// distinguishable instead of swapping into the same position forever.
func SwapOrders(current, target float64, direction models.MoveDirection) Swapped {
	if current != target {
		return Swapped{Current: target, Target: current}
	}
	if direction == models.MoveDirectionUp {
		return Swapped{Current: current - tieBreakDelta, Target: target + tieBreakDelta}
	}
	return Swapped{Current: current + tieBreakDelta, Target: target - tieBreakDelta}
}
