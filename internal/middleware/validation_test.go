package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLeadID(t *testing.T) {
	assert.NoError(t, ValidateLeadID("lead-1"))
	assert.NoError(t, ValidateLeadID(strings.Repeat("a", 64)))
	assert.Error(t, ValidateLeadID(""))
	assert.Error(t, ValidateLeadID(strings.Repeat("a", 65)))
}

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("x", 100001)))
	assert.Error(t, ValidateMessageContent(string([]byte{0xff, 0xfe})))
}

func TestValidateLeadName(t *testing.T) {
	assert.NoError(t, ValidateLeadName("Mombasa Beverages"))
	assert.Error(t, ValidateLeadName(""))
	assert.Error(t, ValidateLeadName(strings.Repeat("n", 257)))
	assert.Error(t, ValidateLeadName(string([]byte{0xc3, 0x28})))
}
