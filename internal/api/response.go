package api

// SendResponse mirrors the provider acknowledgment for a delivered message.
type SendResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid"`
	To      string `json:"to"`
	Status  string `json:"status"`
}
