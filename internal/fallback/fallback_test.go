package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	p := NewProvider()

	t.Run("carries a small browsable catalog", func(t *testing.T) {
		alphabets := p.Alphabets()
		require.NotEmpty(t, alphabets)
		for _, a := range alphabets {
			assert.True(t, a.Type.IsValid(), "type %q", a.Type)
			letters := p.Letters(a.ID)
			require.NotEmpty(t, letters)
			for i, l := range letters {
				assert.Equal(t, a.ID, l.AlphabetID)
				assert.Equal(t, i+1, l.OrderPosition)
			}
		}
	})

	t.Run("unknown alphabet id yields empty letters", func(t *testing.T) {
		assert.Empty(t, p.Letters(999))
	})

	t.Run("callers cannot mutate the shared dataset", func(t *testing.T) {
		first := p.Alphabets()
		first[0].Name = "mutated"
		assert.NotEqual(t, "mutated", p.Alphabets()[0].Name)
	})
}
