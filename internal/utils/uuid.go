package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered identifiers for notifications and
// trace ids.
type UUIDGenerator struct {
	source func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{source: uuid.NewV7}
}

// Generate returns a UUIDv7. When the clock-based source fails it falls back
// to a random UUIDv4 so callers never see an empty id.
func (g *UUIDGenerator) Generate() string {
	id, err := g.source()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
