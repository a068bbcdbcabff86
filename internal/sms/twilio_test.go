package sms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-relay/internal/sms"
)

// Absent credentials must fail on send, before any network call is made.
func TestTwilioSenderMissingCredentials(t *testing.T) {
	sender := sms.NewTwilioSender("", "")

	_, err := sender.Send(context.Background(), "+353860000000", "+353871234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Twilio configuration")
}

func TestTwilioSenderMissingFromNumber(t *testing.T) {
	sender := sms.NewTwilioSender("AC123", "token")

	_, err := sender.Send(context.Background(), "", "+353871234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Twilio configuration")
}
