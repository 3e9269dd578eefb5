// Package idgen produces opaque product identifiers.
package idgen

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the set of symbols an identifier is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the number of symbols in every identifier.
	Length = 10
)

// Generator produces identifiers. Uniqueness is statistical only.
type Generator interface {
	Generate() (string, error)
}

type nanoID struct{}

// New returns a Generator drawing Length symbols uniformly from Alphabet.
func New() Generator {
	return nanoID{}
}

func (nanoID) Generate() (string, error) {
	id, err := gonanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}
