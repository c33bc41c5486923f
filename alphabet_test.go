package sais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankAlphabet(t *testing.T) {
	tests := map[string]struct {
		text   []int32
		ranked []int32
		k      int32
	}{
		"single symbol": {
			text:   []int32{7, 7, 7},
			ranked: []int32{0, 0, 0},
			k:      1,
		},
		"dense already": {
			text:   []int32{0, 1, 2, 1, 0},
			ranked: []int32{0, 1, 2, 1, 0},
			k:      3,
		},
		"sparse": {
			text:   []int32{1000, 5, 70000, 5, 1000},
			ranked: []int32{1, 0, 2, 0, 1},
			k:      3,
		},
		"negative symbols": {
			text:   []int32{-3, 100, -3, 0},
			ranked: []int32{0, 2, 0, 1},
			k:      3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tmp := make([]int32, len(tc.text))
			ranked, k := rankAlphabet(tc.text, tmp)
			assert.Equal(t, tc.ranked, ranked)
			assert.Equal(t, tc.k, k)
			// The scratch must come back zeroed for reuse.
			assert.Equal(t, make([]int32, len(tc.text)), tmp)
		})
	}
}

// Ranking must never change the suffix order, so the core over the
// ranked text has to agree with the naive sort of the raw one.
func TestRankAlphabetOrder(t *testing.T) {
	text := genRandInts(3000, 1<<30)
	tmp := make([]int32, len(text))
	ranked, k := rankAlphabet(text, tmp)
	assert.Equal(t, makeSA(text), runSAInt(ranked, k, 0))
}

func TestDistinctEstimate(t *testing.T) {
	text := genRandInts(4096, 64)
	tmp := make([]int32, len(text))
	est := distinctEstimate(text, tmp)
	// The estimate is probabilistic; it only needs to be in the right
	// neighborhood to size the symbol table.
	assert.Greater(t, est, 16)
	assert.Less(t, est, 512)
	// The scratch must come back zeroed for reuse.
	assert.Equal(t, make([]int32, len(text)), tmp)
}
