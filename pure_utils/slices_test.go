package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Run("splits into fixed-size chunks with a short tail", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	})

	t.Run("one chunk when size exceeds length", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3}, 400)
		assert.Equal(t, [][]int{{1, 2, 3}}, chunks)
	})

	t.Run("empty input yields no chunks", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{}, 3))
	})

	t.Run("exact multiple yields full chunks only", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
	})
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}
