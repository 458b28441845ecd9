package service

import (
	"context"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/marketdata"
)

// TranscriptService fetches a single earnings-call transcript on demand.
type TranscriptService interface {
	Fetch(ctx context.Context, ticker string, year, quarter int) (*models.Transcript, error)
}

type transcriptService struct {
	client marketdata.Client
}

func NewTranscriptService(client marketdata.Client) TranscriptService {
	return &transcriptService{client: client}
}

// Fetch is a synchronous passthrough. The configuration check happens before
// any outbound call; provider errors surface typed (marketdata sentinels) so
// the handler can distinguish not-found from generic failure.
func (s *transcriptService) Fetch(ctx context.Context, ticker string, year, quarter int) (*models.Transcript, error) {
	if !s.client.Configured() {
		return nil, marketdata.ErrNotConfigured
	}
	return s.client.EarningsTranscript(ctx, ticker, year, quarter)
}
