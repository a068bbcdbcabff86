// Package sms abstracts the delivery provider's send operation.
package sms

import "context"

// Receipt is the provider acknowledgment for an accepted message.
type Receipt struct {
	SID    string
	Status string
}

// Sender sends one message and reports the provider's acknowledgment.
// Provider rejections, missing credentials, and network failures are all
// returned as plain errors; callers treat them uniformly.
type Sender interface {
	Send(ctx context.Context, from, to, body string) (Receipt, error)
}
