package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "My Project", "my-project"},
		{"punctuation collapses", "My Cool, Project!", "my-cool-project"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"multiple spaces", "a   b", "a-b"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"digits survive", "Project 2024 v2", "project-2024-v2"},
		{"unicode stripped", "café & résumé", "caf-r-sum"},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "my-project", "project-2024-v2", "x1"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "under_score"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}
