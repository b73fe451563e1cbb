package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessage_EmptyTextIsNoOp(t *testing.T) {
	// The bot is never touched for empty text, so a nil bot is safe here.
	tba := NewTelebotAdapter(nil)

	assert.NoError(t, tba.SendMessage(42, "", nil))
}
