package catalog

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks a position in the flat catalog listing.
type Cursor struct {
	Offset int `json:"offset"`
}

// EncodeCursor encodes a cursor to an opaque base64 string. The zero cursor
// encodes to "".
func EncodeCursor(c Cursor) string {
	if c.Offset <= 0 {
		return ""
	}
	jsonBytes, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor reverses EncodeCursor. An empty string is the zero cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	var c Cursor
	if err := json.Unmarshal(decoded, &c); err != nil || c.Offset < 0 {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
