// Package id generates the opaque identifiers and human-shareable room codes
// used across all collections.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// codeAlphabet is the character set for room join codes. Uppercase letters and
// digits only, with easily confused characters (I, O, 0, 1) removed since
// codes are read aloud and typed by hand.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a room join code.
const CodeLength = 6

// Generate creates a prefixed unique ID using NanoID
// Format: prefix-nanoid (e.g., "room-V1StGXR8_Z5jdHi6B-myT")
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	// Use default NanoID (21 characters, URL-safe alphabet)
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when you're certain the system entropy is available,
// or when failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewRoomCode generates a 6-character uppercase join code.
// Codes are not guaranteed unique here; the store enforces uniqueness at
// insert time and the caller regenerates on collision.
func NewRoomCode() (string, error) {
	code, err := gonanoid.Generate(codeAlphabet, CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate room code: %w", err)
	}
	return code, nil
}
