package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("a", 100001)))
	assert.Error(t, ValidateMessageContent("bad\xff"))
}

func TestValidateDeckID(t *testing.T) {
	assert.NoError(t, ValidateDeckID("1756400000000"))
	assert.Error(t, ValidateDeckID(""))
	assert.Error(t, ValidateDeckID("deck-1"))
	assert.Error(t, ValidateDeckID("123abc"))
}

func TestValidateSlideID(t *testing.T) {
	assert.NoError(t, ValidateSlideID("slide_0"))
	assert.Error(t, ValidateSlideID(""))
	assert.Error(t, ValidateSlideID(strings.Repeat("s", 65)))
}

func TestValidateVersionID(t *testing.T) {
	assert.NoError(t, ValidateVersionID("v_0191b2c3"))
	assert.Error(t, ValidateVersionID("0191b2c3"))
}

func TestValidateConversationID(t *testing.T) {
	assert.NoError(t, ValidateConversationID("0191b2c3-d4e5-7f60-8192-a3b4c5d6e7f8"))
	assert.Error(t, ValidateConversationID("not-a-uuid"))
}
