package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Less(t, first, second, "v7 ids are time ordered")
}

func TestUUIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &UUIDGenerator{source: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	parsed, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
