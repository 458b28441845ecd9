package dto

import "time"

// ErrorResponse is the JSON body returned for every error status.
//
// Contract: Error and Message are always present. Details carries diagnostic
// text when one is safe to expose; it never contains the provider credential
// or a stack trace. Ticker is set on single-ticker endpoints so the frontend
// can attribute the failure.
type ErrorResponse struct {
	Error        string    `json:"error" example:"Service unavailable"`
	Message      string    `json:"message" example:"failed to fetch stock prices"`
	ErrorDetails string    `json:"details,omitempty"`
	Ticker       string    `json:"ticker,omitempty" example:"UNM"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a short error title, a
// human-readable message and an optional inner error whose text becomes the
// details field.
func NewErrorResponse(title, message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Error:     title,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
