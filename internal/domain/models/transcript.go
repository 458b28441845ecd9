package models

import (
	"encoding/json"
	"time"
)

// Transcript is an earnings-call transcript fetched for a single ticker.
//
// Payload is relayed verbatim from the provider; the backend does not inspect
// its structure beyond confirming it is valid, non-empty JSON.
type Transcript struct {
	Ticker      string
	Payload     json.RawMessage
	RetrievedAt time.Time
}
