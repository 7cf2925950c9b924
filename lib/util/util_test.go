package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIn(t *testing.T) {
	assert.True(t, In([]string{"a", "b"}, "b"))
	assert.False(t, In([]string{"a", "b"}, "c"))
	assert.False(t, In(nil, 1))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2}}, Chunk([]int{1, 2}, 2))
	assert.Empty(t, Chunk([]int{}, 3))
	assert.Nil(t, Chunk([]int{1}, 0))

	// appending to a chunk does not overwrite the next one
	s := []int{1, 2, 3, 4}
	c := Chunk(s, 2)
	_ = append(c[0], 9)
	assert.Equal(t, 3, s[2])
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Unique[string](nil))
}
