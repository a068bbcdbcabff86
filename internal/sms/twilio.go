package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers messages through the Twilio REST API.
type TwilioSender struct {
	client     *twilio.RestClient
	accountSID string
	authToken  string
}

func NewTwilioSender(accountSID, authToken string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, accountSID: accountSID, authToken: authToken}
}

// Send submits the message and returns Twilio's message SID and status.
// Missing credentials are reported here as a send error so that a
// misconfigured provider is indistinguishable from any other delivery
// failure.
func (s *TwilioSender) Send(ctx context.Context, from, to, body string) (Receipt, error) {
	if s.accountSID == "" || s.authToken == "" || from == "" {
		return Receipt{}, fmt.Errorf("missing Twilio configuration: account SID, auth token, or from number is empty")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to send SMS to %s: %w", to, err)
	}

	var receipt Receipt
	if resp.Sid != nil {
		receipt.SID = *resp.Sid
	}
	if resp.Status != nil {
		receipt.Status = *resp.Status
	}
	return receipt, nil
}
