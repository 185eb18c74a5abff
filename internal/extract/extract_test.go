package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fencedPayload = "I'll create your SaaS pitch deck now! 🚀\nGENERATE_DECK:\n```json\n" +
	`{"title":"Acme - SaaS Investor Pitch","description":"d","industry":"saas","slides":[{"title":"Problem","content":"x"}]}` +
	"\n```"

func TestPayloadNoSentinel(t *testing.T) {
	payload, err := Payload("Tell me more about your target market.")
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrNoSentinel)
}

func TestPayloadFencedJSON(t *testing.T) {
	payload, err := Payload(fencedPayload)
	require.NoError(t, err)
	assert.Equal(t, "Acme - SaaS Investor Pitch", payload.Title)
	assert.Equal(t, "d", payload.Description)
	assert.Equal(t, "saas", payload.Industry)
	require.Len(t, payload.Slides, 1)
	assert.Equal(t, "Problem", payload.Slides[0].Title)
	assert.Equal(t, "x", payload.Slides[0].Content)
}

func TestPayloadPlainFence(t *testing.T) {
	content := "GENERATE_DECK:\n```\n" +
		`{"title":"T","description":"","slides":[{"title":"A","content":"b"}]}` +
		"\n```"
	payload, err := Payload(content)
	require.NoError(t, err)
	assert.Equal(t, "T", payload.Title)
}

func TestPayloadNoFence(t *testing.T) {
	content := `Here you go. GENERATE_DECK: {"title":"T","slides":[{"title":"A","content":"b"}]}`
	payload, err := Payload(content)
	require.NoError(t, err)
	require.Len(t, payload.Slides, 1)
}

func TestPayloadTruncatedStream(t *testing.T) {
	// Identical to the fenced payload but with the final brace missing,
	// simulating a mid-stream snapshot. Must not error out hard.
	truncated := "GENERATE_DECK:\n```json\n" +
		`{"title":"Acme - SaaS Investor Pitch","description":"d","industry":"saas","slides":[{"title":"Problem","content":"x"}]` + "\n```"
	payload, err := Payload(truncated)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestPayloadUnbalancedBrackets(t *testing.T) {
	content := `GENERATE_DECK: {"title":"T","slides":[{"title":"A","content":"b"}}`
	payload, err := Payload(content)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestPayloadMissingKeyMarkers(t *testing.T) {
	// Balanced JSON that never mentions the slides key is treated as not
	// yet complete, not as an error.
	content := `GENERATE_DECK: {"title":"T","other":true}`
	payload, err := Payload(content)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestPayloadParseFailure(t *testing.T) {
	content := `GENERATE_DECK: {"title":"T","slides":[{"title":}]}`
	payload, err := Payload(content)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrParse)
}

func TestPayloadEmptyTitle(t *testing.T) {
	content := `GENERATE_DECK: {"title":"  ","slides":[{"title":"A","content":"b"}]}`
	_, err := Payload(content)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPayloadEmptySlides(t *testing.T) {
	content := `GENERATE_DECK: {"title":"T","slides":[]}`
	_, err := Payload(content)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPayloadSplitsOnFirstSentinel(t *testing.T) {
	content := `GENERATE_DECK: GENERATE_DECK: {"title":"T","slides":[{"title":"A","content":"b"}]}`
	payload, err := Payload(content)
	require.NoError(t, err)
	assert.Equal(t, "T", payload.Title)
}

func TestHasSentinel(t *testing.T) {
	assert.True(t, HasSentinel(fencedPayload))
	assert.False(t, HasSentinel("just chatting"))
}

func TestOutcomeLabels(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "no_sentinel", Outcome(ErrNoSentinel))
	assert.Equal(t, "incomplete", Outcome(ErrIncomplete))
	assert.Equal(t, "invalid", Outcome(ErrInvalid))

	_, err := Payload(`GENERATE_DECK: {"title":"T","slides":[{"title":}]}`)
	assert.Equal(t, "parse_error", Outcome(err))
}
