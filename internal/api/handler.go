package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/domain/dto"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/marketdata"
	"github.com/mlombardo777/mgis-business-intelligence-dashboard/internal/service"
)

// Handler provides HTTP handlers for the dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Invoke the service layer
//   - Translate service results and typed errors into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	prices          service.PriceBoardService
	transcripts     service.TranscriptService
	groupByIndustry bool
}

// NewHandler constructs a new Handler instance.
//
// groupByIndustry selects the response shape of the price endpoint: grouped
// industry buckets or a single flat list.
func NewHandler(prices service.PriceBoardService, transcripts service.TranscriptService, groupByIndustry bool) *Handler {
	return &Handler{prices: prices, transcripts: transcripts, groupByIndustry: groupByIndustry}
}

// GetPrices handles GET /api/v1/prices requests.
//
// Responses:
//   - 200 OK: full or partial success. At least one lookup succeeded; each
//     entry carries its own succeeded flag and error detail.
//   - 503 Service Unavailable: every lookup failed (per-ticker details included).
//   - 500 Internal Server Error: provider credential missing (fixed generic
//     body) or an unexpected failure.
//
// GetPrices godoc
// @Summary      Get tracked stock prices
// @Description  Fetches current prices for every company on the watchlist, grouped by industry when configured
// @Tags         prices
// @Produce      json
// @Success      200  {object}  dto.IndustryBoardResponse  "Success (grouped mode; flat mode returns dto.PriceBoardResponse)"
// @Failure      500  {object}  dto.ErrorResponse          "Configuration or internal error"
// @Failure      503  {object}  dto.UnavailableResponse    "All lookups failed"
// @Router       /api/v1/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	if h.groupByIndustry {
		h.getPricesByIndustry(c)
		return
	}

	board, err := h.prices.Snapshot(c.Request.Context())
	switch {
	case errors.Is(err, marketdata.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Configuration error", "service is not configured", nil))
	case errors.Is(err, service.ErrAllLookupsFailed):
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableResponse(board))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", "failed to fetch stock prices", err))
	default:
		c.JSON(http.StatusOK, dto.NewPriceBoardResponse(board))
	}
}

func (h *Handler) getPricesByIndustry(c *gin.Context) {
	board, err := h.prices.SnapshotByIndustry(c.Request.Context())
	switch {
	case errors.Is(err, marketdata.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Configuration error", "service is not configured", nil))
	case errors.Is(err, service.ErrAllLookupsFailed):
		c.JSON(http.StatusServiceUnavailable, dto.NewIndustryUnavailableResponse(board))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", "failed to fetch stock prices", err))
	default:
		c.JSON(http.StatusOK, dto.NewIndustryBoardResponse(board))
	}
}

// GetTranscript handles GET /api/v1/transcript requests.
//
// Query Parameters:
//   - ticker (string, required): Stock ticker symbol (e.g., "UNM").
//   - year, quarter (int, optional): Specific earnings call; provider default
//     is the latest one.
//
// Responses:
//   - 200 OK: transcript payload relayed verbatim.
//   - 400 Bad Request: missing ticker or malformed year/quarter.
//   - 404 Not Found: provider reports no transcript for this ticker.
//   - 500 Internal Server Error: configuration or provider failure.
//
// GetTranscript godoc
// @Summary      Get an earnings-call transcript
// @Description  Relays the latest (or a specific) earnings-call transcript for one ticker
// @Tags         transcript
// @Produce      json
// @Param        ticker   query     string  true   "Stock ticker" example(UNM)
// @Param        year     query     int     false  "Earnings year" example(2026)
// @Param        quarter  query     int     false  "Earnings quarter (1-4)" example(2)
// @Success      200      {object}  dto.TranscriptResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse       "Not Found"
// @Failure      500      {object}  dto.ErrorResponse       "Configuration or internal error"
// @Router       /api/v1/transcript [get]
func (h *Handler) GetTranscript(c *gin.Context) {
	// ─── Validate "ticker" param ──────────────────────────────
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Bad request",
			"ticker query parameter is required, e.g. /api/v1/transcript?ticker=UNM", nil))
		return
	}

	// ─── Parse optional "year"/"quarter" params ───────────────
	year, err := queryInt(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Bad request", "year must be an integer", err))
		return
	}
	quarter, err := queryInt(c, "quarter")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Bad request", "quarter must be an integer", err))
		return
	}

	// ─── Query service (with request context) ─────────────────
	transcript, err := h.transcripts.Fetch(c.Request.Context(), ticker, year, quarter)
	switch {
	case errors.Is(err, marketdata.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Configuration error", "service is not configured", nil))
	case errors.Is(err, marketdata.ErrTranscriptNotFound):
		resp := dto.NewErrorResponse("Not found", "no earnings transcript available for this ticker", nil)
		resp.Ticker = ticker
		c.JSON(http.StatusNotFound, resp)
	case err != nil:
		resp := dto.NewErrorResponse("Internal server error", "failed to fetch earnings transcript", err)
		resp.Ticker = ticker
		c.JSON(http.StatusInternalServerError, resp)
	default:
		c.JSON(http.StatusOK, dto.NewTranscriptResponse(transcript))
	}
}

func queryInt(c *gin.Context, name string) (int, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
