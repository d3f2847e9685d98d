package dhis2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUID(t *testing.T) {
	t.Run("Should generate valid UIDs", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			uid := GenerateUID()

			assert.Len(t, uid, 11)
			assert.True(t, IsValidUID(uid), "generated UID %q should be valid", uid)
		}
	})

	t.Run("Should generate distinct UIDs", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			uid := GenerateUID()
			assert.False(t, seen[uid], "UID %q generated twice", uid)
			seen[uid] = true
		}
	})
}

func TestIsValidUID(t *testing.T) {
	t.Run("Should accept well-formed UIDs", func(t *testing.T) {
		assert.True(t, IsValidUID("O6uvpzGd5pu"))
		assert.True(t, IsValidUID("fbfJHSPpUQD"))
		assert.True(t, IsValidUID("a1b2c3d4e5f"))
	})

	t.Run("Should reject malformed UIDs", func(t *testing.T) {
		tests := []struct {
			name string
			uid  string
		}{
			{name: "Empty", uid: ""},
			{name: "Too short", uid: "O6uvpzGd5p"},
			{name: "Too long", uid: "O6uvpzGd5pu1"},
			{name: "Starts with digit", uid: "06uvpzGd5pu"},
			{name: "Contains punctuation", uid: "O6uvpzGd5p-"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.False(t, IsValidUID(tt.uid))
			})
		}
	})
}
