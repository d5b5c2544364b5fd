package keys_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/keys"
)

func TestNormalize(t *testing.T) {
	n := keys.NewNormalizer(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips spaces and case",
			input:    "Chromie Squiggle",
			expected: "chromiesquiggle",
		},
		{
			name:     "strips punctuation",
			input:    "Ringers (by Dmitri Cherniak)",
			expected: "ringersbydmitricherniak",
		},
		{
			name:     "strips diacritics",
			input:    "Élévation Café",
			expected: "elevationcafe",
		},
		{
			name:     "expands ligatures",
			input:    "Ærø Straße",
			expected: "aerostrasse",
		},
		{
			name:     "keeps digits",
			input:    "Subscapes #2",
			expected: "subscapes2",
		},
		{
			name:     "punctuation only falls back to whitespace stripping",
			input:    "? ! ?",
			expected: "?!?",
		},
		{
			name:     "random command key survives",
			input:    "#?",
			expected: "#?",
		},
		{
			name:     "non latin name falls back",
			input:    "草 原",
			expected: "草原",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := keys.NewNormalizer(map[string]string{
		"squiggle": "Chromie Squiggle",
		"fido":     "Fidenza",
		"loopa":    "loopb",
		"loopb":    "loopa",
	})

	inputs := []string{
		"Chromie Squiggle", "squiggle", "FIDO", "Fidenza", "#?", "!!", "Ærø", "loopa", "loopb", "  ", "Meridian ",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "input %q", input)
		assert.Equal(t, once, n.Normalize(input), "deterministic for %q", input)
	}
}

func TestNormalize_AliasChain(t *testing.T) {
	n := keys.NewNormalizer(map[string]string{
		"sq":       "Squig",
		"Squig":    "squiggle",
		"squiggle": "Chromie Squiggle",
	})

	for _, alias := range []string{"sq", "squig", "Squiggle", "Chromie Squiggle"} {
		assert.Equal(t, "chromiesquiggle", n.Normalize(alias), "alias %q", alias)
	}
	require.NoError(t, n.Validate())
}

func TestNormalize_AliasCycle(t *testing.T) {
	n := keys.NewNormalizer(map[string]string{
		"alpha": "beta",
		"beta":  "gamma",
		"gamma": "alpha",
	})

	for _, alias := range []string{"alpha", "beta", "gamma"} {
		key, err := n.Resolve(alias)
		assert.True(t, errors.Is(err, domain.ErrAliasCycle))
		assert.Equal(t, "alpha", key)
	}
	assert.ErrorIs(t, n.Validate(), domain.ErrAliasCycle)
}

func TestNormalize_AliasDepthBound(t *testing.T) {
	aliases := map[string]string{}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t"}
	for i := 0; i < len(names)-1; i++ {
		aliases[names[i]] = names[i+1]
	}
	n := keys.NewNormalizer(aliases)

	_, err := n.Resolve("a")
	assert.ErrorIs(t, err, domain.ErrAliasCycle)

	key, err := n.Resolve("p")
	require.NoError(t, err)
	assert.Equal(t, "t", key)
}

func TestDeburr(t *testing.T) {
	assert.Equal(t, "Creme brulee", keys.Deburr("Crème brûlée"))
	assert.Equal(t, "plain", keys.Deburr("plain"))
}
