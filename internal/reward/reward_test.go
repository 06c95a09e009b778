package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtime/internal/session"
)

func TestSearchURL(t *testing.T) {
	tests := []struct {
		base, label, want string
	}{
		{"", "Pororo", DefaultSearchURL + "Pororo"},
		{"", "Super Simple Songs", DefaultSearchURL + "Super+Simple+Songs"},
		{"https://example.com/?q=", "a&b", "https://example.com/?q=a%26b"},
		{"", "뽀로로", DefaultSearchURL + "%EB%BD%80%EB%A1%9C%EB%A1%9C"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SearchURL(tc.base, tc.label), tc.label)
	}
}

func TestGate(t *testing.T) {
	eligible := session.Summary{Score: 50, RewardEligible: true}
	low := session.Summary{Score: 49}

	link, err := Gate("", eligible, " Numberblocks ")
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchURL+"Numberblocks", link)

	_, err = Gate("", low, "Numberblocks")
	assert.ErrorIs(t, err, ErrNotEligible)

	_, err = Gate("", eligible, "  ")
	assert.ErrorIs(t, err, ErrNoChoice)

	// Eligibility is checked before the choice.
	_, err = Gate("", low, "")
	assert.ErrorIs(t, err, ErrNotEligible)
}
