package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockTiktoken implements a mock tokenizer for testing
type mockTiktoken struct {
	countTokens func(string) int
}

func (m *mockTiktoken) Encode(text string, allowedSpecial, disallowedSpecial []string) []int {
	tokens := make([]int, m.countTokens(text))
	for i := range tokens {
		tokens[i] = i
	}
	return tokens
}

func TestCountTokens(t *testing.T) {
	counter := newTokenCounter(&mockTiktoken{
		countTokens: func(s string) int {
			return len(strings.Fields(s))
		},
	})

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "single word", text: "Lisbon", want: 1},
		{name: "sentence", text: "I want to travel from Lisbon to Porto", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, counter.CountTokens(tt.text))
		})
	}
}

func TestCountTokensSkipsEncoderOnEmptyText(t *testing.T) {
	calls := 0
	counter := newTokenCounter(&mockTiktoken{
		countTokens: func(s string) int {
			calls++
			return 1
		},
	})

	assert.Equal(t, 0, counter.CountTokens(""))
	assert.Equal(t, 0, calls)
}
