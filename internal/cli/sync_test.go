package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCron(t *testing.T) {
	t.Run("Should convert 5-field to 6-field cron", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected string
		}{
			{
				name:     "Daily at 2 AM",
				input:    "0 2 * * *",
				expected: "0 0 2 * * *",
			},
			{
				name:     "Every 15 minutes",
				input:    "*/15 * * * *",
				expected: "0 */15 * * * *",
			},
			{
				name:     "Every Monday at 9 AM",
				input:    "0 9 * * 1",
				expected: "0 0 9 * * 1",
			},
			{
				name:     "First day of month at midnight",
				input:    "0 0 1 * *",
				expected: "0 0 0 1 * *",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := normalizeCron(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			})
		}
	})

	t.Run("Should keep valid 6-field cron unchanged", func(t *testing.T) {
		result, err := normalizeCron("30 */5 * * * *")

		require.NoError(t, err)
		assert.Equal(t, "30 */5 * * * *", result)
	})

	t.Run("Should trim surrounding whitespace", func(t *testing.T) {
		result, err := normalizeCron("  0 2 * * *  ")

		require.NoError(t, err)
		assert.Equal(t, "0 0 2 * * *", result)
	})

	t.Run("Should reject malformed expressions", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{name: "Too few fields", input: "* * *"},
			{name: "Too many fields", input: "* * * * * * *"},
			{name: "Out of range minute", input: "99 * * * *"},
			{name: "Garbage", input: "not a cron"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := normalizeCron(tt.input)
				assert.Error(t, err)
			})
		}
	})
}
