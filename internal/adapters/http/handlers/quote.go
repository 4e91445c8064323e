package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quote-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-api/internal/app"
	"github.com/jsamuelsen/quote-api/internal/domain"
)

// quotesServed counts quote responses by lookup kind (id, category, random, list).
var quotesServed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quotes_served_total",
	Help: "The total number of quote responses served, by lookup kind.",
}, []string{"kind"})

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}

// toQuoteListResponse converts a slice of domain Quotes to an HTTP response.
// The result is never nil so an empty list serializes as [].
func toQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, *toQuoteResponse(&quotes[i]))
	}

	return out
}

// GetQuote handles GET /api/quote
// Query parameters, in precedence order:
//   - id: returns exactly that quote; a malformed or unknown id is
//     answered 404 Quote not found, not a validation error
//   - category: a uniform random draw from the matching quotes;
//     an empty match set is 404. An empty value behaves like an
//     absent parameter: no valid quote has an empty category
//   - neither: a uniform random draw from the full catalog
//
// @Summary Get a single quote
// @Description Returns one quote, by id, by random draw within a category, or by random draw
// @Tags quotes
// @Produce json
// @Param id query int false "Quote ID"
// @Param category query string false "Category filter (exact, case-sensitive)"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quote [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	ctx := c.Request.Context()

	if rawID, ok := c.GetQuery("id"); ok {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			// Malformed ids are "no match", not a 400.
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageQuoteNotFound))
			return
		}

		quote, err := h.service.GetQuoteByID(ctx, id)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		quotesServed.WithLabelValues("id").Inc()
		c.JSON(http.StatusOK, toQuoteResponse(quote))

		return
	}

	category := c.Query("category")

	quote, err := h.service.RandomQuote(ctx, category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if category != "" {
		quotesServed.WithLabelValues("category").Inc()
	} else {
		quotesServed.WithLabelValues("random").Inc()
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// ListQuotes handles GET /api/quotes
// Returns the full catalog, or the subset matching the optional category
// parameter. Always 200 with a JSON array, possibly empty: unlike the
// single-quote endpoint, a collection with no matches is not a 404.
//
// @Summary List quotes
// @Description Returns all quotes, optionally filtered by category
// @Tags quotes
// @Produce json
// @Param category query string false "Category filter (exact, case-sensitive)"
// @Success 200 {array} QuoteResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context(), c.Query("category"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quotesServed.WithLabelValues("list").Inc()
	c.JSON(http.StatusOK, toQuoteListResponse(quotes))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote", h.GetQuote)
	rg.GET("/quotes", h.ListQuotes)
}
