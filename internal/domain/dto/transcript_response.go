package dto

import (
	"encoding/json"
	"time"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
)

// TranscriptResponse is the success body of GET /api/v1/transcript.
// Data is the provider payload relayed verbatim.
type TranscriptResponse struct {
	Success   bool            `json:"success"`
	Ticker    string          `json:"ticker" example:"UNM"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewTranscriptResponse maps a fetched transcript onto the wire contract.
func NewTranscriptResponse(t *models.Transcript) TranscriptResponse {
	return TranscriptResponse{
		Success:   true,
		Ticker:    t.Ticker,
		Data:      t.Payload,
		Timestamp: t.RetrievedAt,
	}
}
