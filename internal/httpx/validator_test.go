package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type params struct {
		Mode string `validate:"omitempty,searchmode"`
		Q    string `validate:"max=10"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(params{Mode: "title", Q: "hobbit"}))
	})

	t.Run("empty mode allowed", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(params{Q: "hobbit"}))
	})

	t.Run("bad mode", func(t *testing.T) {
		details := ValidateStruct(params{Mode: "isbn"})
		require.Len(t, details, 1)
		assert.Equal(t, "mode", details[0].Field)
		assert.Contains(t, details[0].Message, "general, title, author, authors")
	})

	t.Run("query too long", func(t *testing.T) {
		details := ValidateStruct(params{Q: "a very long query string"})
		require.Len(t, details, 1)
		assert.Equal(t, "q", details[0].Field)
	})
}
