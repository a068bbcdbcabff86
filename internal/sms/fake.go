package sms

import "context"

// FakeCall records the arguments of one Send invocation.
type FakeCall struct {
	From string
	To   string
	Body string
}

// Fake is an in-memory Sender for tests. It records every call and returns
// the configured receipt or error.
type Fake struct {
	Receipt Receipt
	Err     error

	Calls []FakeCall
}

func (f *Fake) Send(_ context.Context, from, to, body string) (Receipt, error) {
	f.Calls = append(f.Calls, FakeCall{From: from, To: to, Body: body})
	if f.Err != nil {
		return Receipt{}, f.Err
	}
	return f.Receipt, nil
}
