package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SlugGenerator produces filename stems for generated articles
type SlugGenerator interface {
	Generate() (string, error)
}

// RandomSlugGenerator returns lowercase hex strings read from crypto/rand.
// Slugs are not checked for uniqueness.
type RandomSlugGenerator struct {
	Length int
}

// NewRandomSlugGenerator creates a generator for slugs of the given length
func NewRandomSlugGenerator(length int) *RandomSlugGenerator {
	if length <= 0 {
		length = slugLength
	}
	return &RandomSlugGenerator{Length: length}
}

// Generate returns a new random slug
func (g *RandomSlugGenerator) Generate() (string, error) {
	b := make([]byte, (g.Length+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(b)[:g.Length], nil
}
