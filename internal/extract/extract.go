// Package extract parses structured deck payloads embedded in assistant
// chat replies after the GENERATE_DECK sentinel.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pitchdeck-ai/platform/internal/model"
)

// Sentinel is the literal marker that separates free-text chat reply
// from an embedded structured deck payload.
const Sentinel = "GENERATE_DECK:"

var (
	// ErrNoSentinel means the reply carries no deck payload at all.
	ErrNoSentinel = errors.New("reply contains no deck sentinel")

	// ErrIncomplete means the payload region does not yet look like a
	// complete JSON document. During streaming this is the normal state
	// while tokens are still arriving.
	ErrIncomplete = errors.New("deck payload incomplete")

	// ErrParse means the candidate looked complete but failed to parse.
	ErrParse = errors.New("deck payload parse failed")

	// ErrInvalid means the payload parsed but is missing a usable title
	// or a non-empty slides sequence.
	ErrInvalid = errors.New("deck payload invalid")
)

var (
	leadingFence  = regexp.MustCompile("(?i)^\\s*```(?:json)?")
	trailingFence = regexp.MustCompile("```\\s*$")
)

// HasSentinel reports whether content contains the deck sentinel.
func HasSentinel(content string) bool {
	return strings.Contains(content, Sentinel)
}

// Payload extracts and validates the deck payload embedded in an
// assistant reply. The payload region is everything after the first
// sentinel occurrence, with optional fenced-code wrappers stripped.
//
// Several cheap textual guards run before parsing so that truncated
// streaming output is rejected without throwing: the candidate must
// mention both the title and slides keys, carry balanced braces and
// brackets, and end with a closing brace.
func Payload(content string) (*model.DeckPayload, error) {
	idx := strings.Index(content, Sentinel)
	if idx < 0 {
		return nil, ErrNoSentinel
	}

	raw := content[idx+len(Sentinel):]
	raw = leadingFence.ReplaceAllString(raw, "")
	raw = trailingFence.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(raw)

	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first < 0 || last < 0 {
		return nil, ErrIncomplete
	}

	candidate := raw[first : last+1]

	if !strings.Contains(candidate, `"slides"`) || !strings.Contains(candidate, `"title"`) {
		return nil, ErrIncomplete
	}
	if strings.Count(candidate, "{") != strings.Count(candidate, "}") {
		return nil, ErrIncomplete
	}
	if strings.Count(candidate, "[") != strings.Count(candidate, "]") {
		return nil, ErrIncomplete
	}
	if !strings.HasSuffix(strings.TrimSpace(candidate), "}") {
		return nil, ErrIncomplete
	}

	var payload model.DeckPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if strings.TrimSpace(payload.Title) == "" {
		return nil, ErrInvalid
	}
	if len(payload.Slides) == 0 {
		return nil, ErrInvalid
	}

	return &payload, nil
}

// Outcome maps an extraction error to a metrics label. A nil error maps
// to "success".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoSentinel):
		return "no_sentinel"
	case errors.Is(err, ErrIncomplete):
		return "incomplete"
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrInvalid):
		return "invalid"
	default:
		return "error"
	}
}
