package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsAny(t *testing.T) {
	testCases := []struct {
		text     string
		needles  []string
		expected bool
	}{
		{text: "Google PPO Results", needles: []string{"ppo"}, expected: true},
		{text: "Pre-Placement Offer", needles: []string{"ppo", "pre-placement"}, expected: true},
		{text: "Summer Internship", needles: []string{"ppo"}, expected: false},
		{text: "anything", needles: nil, expected: false},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ContainsAny(test.text, test.needles), test.text)
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "google", expected: "Google"},
		{in: "GOLDMAN SACHS", expected: "Goldman Sachs"},
		{in: "jp morgan chase & co", expected: "Jp Morgan Chase & Co"},
		{in: "3m india", expected: "3M India"},
		{in: "o'reilly", expected: "O'Reilly"},
		{in: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, TitleCase(test.in))
	}
}
