package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateWithPrefix returns "<prefix>_<uuid>". An empty prefix yields the
// bare identifier.
func (g *UUIDGenerator) GenerateWithPrefix(prefix string) string {
	id := g.Generate()
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return id
	}

	return prefix + "_" + id
}
