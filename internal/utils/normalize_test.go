package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleaner(t *testing.T) {
	tests := []struct {
		name       string
		normalizer Normalizer
		input      string
		expected   string
	}{
		{
			name:       "lowercase with surrounding whitespace",
			normalizer: LowercaseNormalizer{},
			input:      "   HeLLo THERE   ",
			expected:   "hello there",
		},
		{
			name:       "uppercase",
			normalizer: UppercaseNormalizer{},
			input:      "   HeLLo THERE   ",
			expected:   "HELLO THERE",
		},
		{
			name:       "email canonicalization",
			normalizer: EmailNormalizer{},
			input:      "   STUDENT123@EXAMPLE.EDU   ",
			expected:   "student123@example.edu",
		},
		{
			name:       "empty input",
			normalizer: LowercaseNormalizer{},
			input:      "",
			expected:   "",
		},
		{
			name:       "whitespace only",
			normalizer: UppercaseNormalizer{},
			input:      "   ",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := NewCleaner(tt.normalizer)
			assert.Equal(t, tt.expected, cleaner.Clean(tt.input))
		})
	}
}

func TestNormalizersWithoutCleaner(t *testing.T) {
	// Bare normalizers do not trim; trimming is the cleaner's job.
	assert.Equal(t, "abc ", LowercaseNormalizer{}.Normalize("ABC "))
	assert.Equal(t, "a@b.com", EmailNormalizer{}.Normalize("A@B.COM"))
}
