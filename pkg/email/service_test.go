package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("leads@example.com", "TVS Motors", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "leads@example.com", svc.fromEmail)
	assert.Equal(t, "TVS Motors", svc.fromName)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("leads@example.com", "TVS Motors", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSend_ConsoleMode(t *testing.T) {
	svc := NewService("leads@example.com", "TVS Motors", "")

	err := svc.Send("user@example.com", "Asha Rao",
		"Your TVS test ride is booked",
		"<p>Booked</p>", "Booked")
	assert.NoError(t, err, "console mode should not error")
}
