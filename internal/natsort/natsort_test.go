package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"S2", "S10", true},
		{"S10", "S2", false},
		{"S1", "S1", false},
		{"O1.5", "O1.10", false}, // 1.5 > 1.10 numerically
		{"O1.10", "O1.5", true},
		{"10", "a", true}, // numbers before text
		{"a", "10", false},
		{"", "a", true},
		{"abc", "abd", true},
		{"sample2x", "sample10a", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Less(tt.a, tt.b), "Less(%q, %q)", tt.a, tt.b)
	}
}

func TestSort(t *testing.T) {
	ids := []string{"S10", "S2", "S1", "O3", "S2.5"}
	Sort(ids)
	assert.Equal(t, []string{"O3", "S1", "S2", "S2.5", "S10"}, ids)
}

func TestCompareTotalOrder(t *testing.T) {
	// Equal numeric values with different spellings still order deterministically.
	assert.NotEqual(t, 0, Compare("S01", "S1"))
	assert.Equal(t, 0, Compare("S1", "S1"))
	assert.Equal(t, -Compare("S1", "S01"), Compare("S01", "S1"))
}
