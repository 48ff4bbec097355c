package collatz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, k, want uint64
	}{
		{1, 8, 0},
		{2, 8, 1},
		{3, 8, 7},
		{100, 8, 88},
		{100, 10, 22},
		{267, 10, 340},
		{423, 10, 3220},
		{8, 3, 1},
		{8, 4, 3},
		{0, 8, 0},
		{7, 0, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Reduce(tt.n, tt.k), "Reduce(%d, %d)", tt.n, tt.k)
	}
}

func TestReducer(t *testing.T) {
	t.Parallel()

	f := Reducer(DefaultCap)
	assert.Equal(t, uint64(88), f(100))
	assert.Equal(t, Reduce(27, DefaultCap), f(27))
}
