package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single char", "a", 97},
		{"two chars", "ab", 97*31 + 98},
		{"word", "hello", 99162322},
		{"positive", "Paris", 76884331},
		{"negative wraps to abs", "Barcelona", 751905909},
		{"min int32", "polygenelubricants", 2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashString(tt.in))
		})
	}
}

func TestHashString_UTF16Units(t *testing.T) {
	// é is one UTF-16 unit (233); 😀 is a surrogate pair.
	assert.Equal(t, 233, HashString("é"))
	assert.Equal(t, 0xD83D*31+0xDE00, HashString("😀"))
}

func TestHashString_NeverNegative(t *testing.T) {
	for _, s := range []string{"Tokyo, Japan", "Reykjavík", "zzzzzzzzzzzzzzzzzzzz", "NYC-Paris-2025-06-01"} {
		assert.GreaterOrEqual(t, HashString(s), 0, s)
	}
}

func TestPick(t *testing.T) {
	opts := []string{"a", "b", "c"}

	assert.Equal(t, "a", Pick(opts, 0))
	assert.Equal(t, "c", Pick(opts, 5))
	assert.Equal(t, "b", Pick(opts, -4))
	assert.Equal(t, "", Pick([]string{}, 3))
	assert.Equal(t, 0, Pick[int](nil, 3))
}
