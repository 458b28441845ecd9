package marketdata

import (
	"errors"
	"fmt"
)

// Sentinel errors callers branch on with errors.Is.
var (
	// ErrNotConfigured means the provider API key is absent. Detected before
	// any outbound call is made.
	ErrNotConfigured = errors.New("stock data provider is not configured")

	// ErrTranscriptNotFound means the provider explicitly reported no
	// transcript for the requested ticker (404 or a well-formed empty payload).
	ErrTranscriptNotFound = errors.New("no transcript found for ticker")

	// ErrNoPrice means the provider answered with a well-formed payload that
	// carries no usable price field. Treated as a lookup failure: a null
	// price is not actionable on the dashboard.
	ErrNoPrice = errors.New("provider response contains no price")
)

// ProviderError reports a non-2xx status from the upstream API. Non-success
// responses are never parsed as data.
type ProviderError struct {
	Endpoint   string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s returned status %d", e.Endpoint, e.StatusCode)
}
