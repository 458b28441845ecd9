package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/models"
)

// PriceBoardResponse is the flat-mode body of GET /api/v1/prices.
//
// success is true whenever at least one lookup succeeded; callers must still
// inspect each entry's succeeded flag, since the list may mix successes and
// failures.
type PriceBoardResponse struct {
	Success         bool                 `json:"success"`
	Data            []models.PriceResult `json:"data"`
	Timestamp       time.Time            `json:"timestamp"`
	TotalCompanies  int                  `json:"totalCompanies"`
	TotalSuccessful int                  `json:"totalSuccessful"`
}

// NewPriceBoardResponse maps a flat board aggregate onto the wire contract.
func NewPriceBoardResponse(b *models.Board) PriceBoardResponse {
	return PriceBoardResponse{
		Success:         true,
		Data:            b.Results,
		Timestamp:       b.GeneratedAt,
		TotalCompanies:  b.TotalCompanies,
		TotalSuccessful: b.TotalSuccessful,
	}
}

// IndustryAggregate is the per-group value in the grouped response.
type IndustryAggregate struct {
	Name         string               `json:"name"`
	Results      []models.PriceResult `json:"results"`
	TotalCount   int                  `json:"totalCount"`
	SuccessCount int                  `json:"successCount"`
}

// NamedIndustryAggregate pairs a group key with its aggregate so order can be
// kept outside a Go map.
type NamedIndustryAggregate struct {
	Key string
	IndustryAggregate
}

// OrderedIndustries marshals as a JSON object whose keys appear in slice
// order. encoding/json sorts map keys alphabetically, which would break the
// contract that groups render in configuration order.
type OrderedIndustries []NamedIndustryAggregate

// MarshalJSON implements json.Marshaler.
func (o OrderedIndustries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.IndustryAggregate)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IndustryBoardResponse is the grouped-mode body of GET /api/v1/prices.
type IndustryBoardResponse struct {
	Success         bool              `json:"success"`
	Industries      OrderedIndustries `json:"industries"`
	Timestamp       time.Time         `json:"timestamp"`
	TotalCompanies  int               `json:"totalCompanies"`
	TotalSuccessful int               `json:"totalSuccessful"`
}

// NewIndustryBoardResponse maps a grouped board aggregate onto the wire
// contract, preserving group order.
func NewIndustryBoardResponse(b *models.IndustryBoard) IndustryBoardResponse {
	return IndustryBoardResponse{
		Success:         true,
		Industries:      orderedIndustries(b.Groups),
		Timestamp:       b.GeneratedAt,
		TotalCompanies:  b.TotalCompanies,
		TotalSuccessful: b.TotalSuccessful,
	}
}

// UnavailableResponse is the 503 body when every lookup in a batch failed.
// The per-company results (all failed, each with its own error detail) are
// included so the frontend can still render what went wrong per ticker.
// Exactly one of Details (flat mode) or Industries (grouped mode) is set.
type UnavailableResponse struct {
	Error      string               `json:"error"`
	Message    string               `json:"message"`
	Details    []models.PriceResult `json:"details,omitempty"`
	Industries OrderedIndustries    `json:"industries,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewUnavailableResponse builds the flat-mode 503 body.
func NewUnavailableResponse(b *models.Board) UnavailableResponse {
	return UnavailableResponse{
		Error:     "Service unavailable",
		Message:   "all stock price lookups failed",
		Details:   b.Results,
		Timestamp: b.GeneratedAt,
	}
}

// NewIndustryUnavailableResponse builds the grouped-mode 503 body.
func NewIndustryUnavailableResponse(b *models.IndustryBoard) UnavailableResponse {
	return UnavailableResponse{
		Error:      "Service unavailable",
		Message:    "all stock price lookups failed",
		Industries: orderedIndustries(b.Groups),
		Timestamp:  b.GeneratedAt,
	}
}

func orderedIndustries(groups []models.GroupResult) OrderedIndustries {
	out := make(OrderedIndustries, 0, len(groups))
	for _, g := range groups {
		out = append(out, NamedIndustryAggregate{
			Key: g.Key,
			IndustryAggregate: IndustryAggregate{
				Name:         g.Name,
				Results:      g.Results,
				TotalCount:   g.TotalCompanies,
				SuccessCount: g.TotalSuccessful,
			},
		})
	}
	return out
}
