// Package roundid generates identifiers for dealt rounds. IDs are UUIDv7
// values encoded as 26 lowercase Crockford base32 characters, so they sort
// by creation time.
package roundid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded round ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates round IDs, optionally drawing random bits from a fixed
// reader for reproducible tests.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand.
func NewGenerator(rand io.Reader) *Generator {
	return &Generator{rand: rand}
}

// Generate creates a new round ID using crypto/rand
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// Generate creates a new round ID
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generate round id: %w", err)
	}
	return encoding.EncodeToString(id[:]), nil
}

// Parse decodes a round ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if len(id) != Length {
		return uuid.Nil, fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("round ID %q: %w", id, err)
	}
	parsed, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("round ID %q: %w", id, err)
	}
	if parsed.Version() != 7 {
		return uuid.Nil, fmt.Errorf("round ID %q: unexpected uuid version %d", id, parsed.Version())
	}
	return parsed, nil
}
