package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateLeadID validates a lead identifier.
func ValidateLeadID(id string) error {
	if len(id) == 0 {
		return errors.New("lead ID cannot be empty")
	}
	if len(id) > 64 {
		return errors.New("lead ID exceeds maximum length")
	}
	return nil
}

// ValidateMessageContent validates message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateLeadName validates a lead's display name.
func ValidateLeadName(name string) error {
	if len(name) == 0 {
		return errors.New("name cannot be empty")
	}
	if len(name) > 256 {
		return errors.New("name exceeds maximum length")
	}
	if !utf8.ValidString(name) {
		return errors.New("name must be valid UTF-8")
	}
	return nil
}
