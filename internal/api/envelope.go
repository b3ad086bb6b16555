package api

import (
	"encoding/json"
)

// StatusOK is the envelope status reported for successful calls.
const StatusOK = 0

// Envelope is the response wrapper returned by every TMO endpoint.
// Data is kept raw so the transport can normalize it into a renderable value.
type Envelope struct {
	Status       int             `json:"Status"`
	Data         json.RawMessage `json:"Data"`
	ErrorMessage string          `json:"ErrorMessage"`
	ErrorNumber  int             `json:"ErrorNumber"`
}

// Err converts a failed envelope into an API error. Returns nil on success.
func (e *Envelope) Err() error {
	if e.Status == StatusOK && e.ErrorNumber == 0 {
		return nil
	}
	msg := e.ErrorMessage
	if msg == "" {
		msg = "the API reported a failure without a message"
	}
	return NewAPIError(msg, e.ErrorNumber)
}
