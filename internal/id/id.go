// Package id generates the prefixed identifiers used for catalog records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate returns prefix-nanoid, e.g. "book-V1StGXR8_Z5jdHi6B-myT".
//
// It fails only when the system cannot supply secure randomness.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
