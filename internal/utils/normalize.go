// Package utils provides small text-normalization helpers shared by the
// record pipeline.
package utils

import "strings"

// Normalizer canonicalizes a free-form text field.
type Normalizer interface {
	Normalize(s string) string
}

// LowercaseNormalizer lowercases its input. Used for case-insensitive
// discriminator fields.
type LowercaseNormalizer struct{}

func (LowercaseNormalizer) Normalize(s string) string { return strings.ToLower(s) }

// UppercaseNormalizer uppercases its input.
type UppercaseNormalizer struct{}

func (UppercaseNormalizer) Normalize(s string) string { return strings.ToUpper(s) }

// EmailNormalizer canonicalizes email addresses to lowercase. It never
// rejects: format validation is not the pipeline's contract.
type EmailNormalizer struct{}

func (EmailNormalizer) Normalize(s string) string { return strings.ToLower(s) }

// Cleaner trims surrounding whitespace and applies a normalizer.
type Cleaner struct {
	normalizer Normalizer
}

// NewCleaner creates a cleaner around the given normalizer.
func NewCleaner(n Normalizer) *Cleaner {
	return &Cleaner{normalizer: n}
}

// Clean trims and normalizes the input.
func (c *Cleaner) Clean(s string) string {
	return c.normalizer.Normalize(strings.TrimSpace(s))
}
