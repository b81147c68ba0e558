package models

import "time"

// EchoRequest is the JSON body of POST /api/echo. Message is a pointer so
// the handler can tell an absent request body (nil) apart from a present but
// invalid one; the latter is rejected by validation before the handler runs.
// Length limits count Unicode runes, not bytes.
type EchoRequest struct {
	Message *string `json:"message" validate:"omitempty,notblank,min=1,max=10000"`
}

// EchoResponse is the payload of POST /api/echo. Length is the number of
// Unicode code points in the echoed message.
type EchoResponse struct {
	Echo      string    `json:"echo"`
	Timestamp time.Time `json:"timestamp"`
	Length    int       `json:"length"`
}
