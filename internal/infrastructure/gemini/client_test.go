package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/domain"
)

func TestParseIcebreakers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name:     "plain json",
			input:    `["Hi Mary", "Hello there"]`,
			expected: []string{"Hi Mary", "Hello there"},
		},
		{
			name:     "fenced json",
			input:    "```json\n[\"One\", \"Two\", \"Three\", \"Four\"]\n```",
			expected: []string{"One", "Two", "Three"},
		},
		{
			name:     "numbered lines",
			input:    "1. Hey Nakuru!\n2. Coffee sometime?\n",
			expected: []string{"Hey Nakuru!", "Coffee sometime?"},
		},
		{name: "empty", input: "   ", wantErr: true},
		{name: "empty array", input: "[]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIcebreakers(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	age := 41
	prompt := buildPrompt(&domain.Profile{
		Name:     "Caroline",
		Age:      &age,
		Location: "Nakuru",
		Bio:      strings.Repeat("b", 500),
	})

	assert.Contains(t, prompt, "Caroline")
	assert.Contains(t, prompt, "41")
	assert.Contains(t, prompt, "Nakuru")
	assert.NotContains(t, prompt, strings.Repeat("b", 301))
	assert.Contains(t, buildPrompt(&domain.Profile{Name: "X"}), "Their age: unknown")
}
