// Package id generates prefixed unique identifiers for kanban entities.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Well-known prefixes for kanban entities.
// Format: prefix-nanoid (e.g., "card-V1StGXR8_Z5jdHi6B-myT").
const (
	PrefixBoard   = "board"
	PrefixColumn  = "col"
	PrefixCard    = "card"
	PrefixComment = "comment"
	PrefixUser    = "user"
	PrefixLabel   = "label"
)

// Generate creates a prefixed unique ID using NanoID.
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	// Use default NanoID (21 characters, URL-safe alphabet)
	nid, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + nid, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when you're certain the system entropy is available,
// or when failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	nid, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return nid
}
