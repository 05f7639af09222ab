package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and category fields.
const (
	maxTitleLen        = 300
	maxContentLen      = 100_000
	maxCoverURLLen     = 2_000
	maxCategoryNameLen = 100
)

// validateNewPost checks the required fields of a post creation request and
// returns the first error found, or "" when valid. Updates are not
// validated: provided fields overwrite, including with empty strings.
func validateNewPost(title, content, coverImageURL string) string {
	if strings.TrimSpace(title) == "" ||
		strings.TrimSpace(content) == "" ||
		strings.TrimSpace(coverImageURL) == "" {
		return "title, content, and coverImageURL are required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	if utf8.RuneCountInString(coverImageURL) > maxCoverURLLen {
		return "coverImageURL is too long (max 2,000 characters)"
	}
	return ""
}

// validateCategoryName checks a category name for create and rename.
func validateCategoryName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "category name is required"
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return "category name is too long (max 100 characters)"
	}
	return ""
}
