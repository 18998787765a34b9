package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeCursor(t *testing.T) {
	t.Run("zero cursor", func(t *testing.T) {
		assert.Empty(t, EncodeCursor(Cursor{}))
	})

	t.Run("with offset", func(t *testing.T) {
		// {"offset":20}
		assert.Equal(t, "eyJvZmZzZXQiOjIwfQ==", EncodeCursor(Cursor{Offset: 20}))
	})
}

func TestDecodeCursor(t *testing.T) {
	t.Run("empty cursor", func(t *testing.T) {
		c, err := DecodeCursor("")
		assert.NoError(t, err)
		assert.Equal(t, Cursor{}, c)
	})

	t.Run("valid cursor", func(t *testing.T) {
		c, err := DecodeCursor("eyJvZmZzZXQiOjIwfQ==")
		assert.NoError(t, err)
		assert.Equal(t, 20, c.Offset)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		c, err := DecodeCursor("invalid-base64!!!")
		assert.ErrorIs(t, err, ErrInvalidCursor)
		assert.Equal(t, Cursor{}, c)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	original := Cursor{Offset: 7}
	decoded, err := DecodeCursor(EncodeCursor(original))
	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}
