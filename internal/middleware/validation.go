package middleware

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var deckIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidateMessageContent validates chat message content.
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

// ValidateConversationID validates a conversation ID.
func ValidateConversationID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid conversation ID format")
	}
	return nil
}

// ValidateDeckID validates a deck ID.
func ValidateDeckID(id string) error {
	if !deckIDPattern.MatchString(id) {
		return errors.New("invalid deck ID format")
	}
	return nil
}

// ValidateSlideID validates a slide ID.
func ValidateSlideID(id string) error {
	if id == "" {
		return errors.New("slide ID cannot be empty")
	}
	if len(id) > 64 {
		return errors.New("slide ID exceeds maximum length")
	}
	return nil
}

// ValidateVersionID validates a slide version ID.
func ValidateVersionID(id string) error {
	if !strings.HasPrefix(id, "v_") {
		return errors.New("invalid version ID format")
	}
	return nil
}

// ValidateTitle validates a deck or conversation title.
func ValidateTitle(title string) error {
	if len(title) > 256 {
		return errors.New("title exceeds maximum length")
	}
	if !utf8.ValidString(title) {
		return errors.New("title must be valid UTF-8")
	}
	return nil
}
