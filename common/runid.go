package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RunIDSize is the number of raw bytes in a run identifier.
const RunIDSize = 12

// ErrInvalidRunID is reported when parsing a malformed run identifier.
const ErrInvalidRunID = ConstError("invalid run identifier")

// RunID identifies one logical experiment. All entries, status and info
// records of database backends are scoped by it, allowing many
// experiments to share a single physical database. The zero value
// marks an unset identifier.
type RunID [RunIDSize]byte

// NewRunID generates a fresh random run identifier.
func NewRunID() (RunID, error) {
	var id RunID
	if _, err := rand.Read(id[:]); err != nil {
		return RunID{}, fmt.Errorf("failed to generate run identifier; %w", err)
	}
	return id, nil
}

// ParseRunID decodes a run identifier from its hexadecimal string
// form. The input must decode to exactly RunIDSize bytes.
func ParseRunID(s string) (RunID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return RunID{}, fmt.Errorf("%w: %q", ErrInvalidRunID, s)
	}
	if len(raw) != RunIDSize {
		return RunID{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidRunID, len(raw), RunIDSize)
	}
	var id RunID
	copy(id[:], raw)
	return id, nil
}

func (id RunID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the identifier is unset.
func (id RunID) IsZero() bool {
	return id == RunID{}
}
