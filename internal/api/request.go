package api

// SendRequest is the POST /send body. The password is compared and
// discarded, never stored or logged.
type SendRequest struct {
	Password string `json:"password"`
	To       string `json:"to"`
	Message  string `json:"message"`
}
