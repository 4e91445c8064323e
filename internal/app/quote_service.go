// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quote-api/internal/domain"
	"github.com/jsamuelsen/quote-api/internal/platform/logging"
	"github.com/jsamuelsen/quote-api/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on the repository port, not a concrete implementation,
// following the Dependency Inversion Principle.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// GetQuoteByID retrieves a specific quote by its identifier.
// Returns domain.ErrNotFound if no quote has that ID.
func (s *QuoteService) GetQuoteByID(ctx context.Context, id int) (*domain.Quote, error) {
	logger := logging.FromContext(ctx)

	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "quote lookup failed",
			slog.Int("quote_id", id),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("getting quote %d: %w", id, err)
	}

	logger.InfoContext(ctx, "served quote by id",
		slog.Int("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// RandomQuote selects a quote uniformly at random. When category is
// non-empty, the draw is restricted to quotes matching it exactly;
// an empty match set is a not-found condition, mirroring the
// single-item semantics of the lookup endpoint.
func (s *QuoteService) RandomQuote(ctx context.Context, category string) (*domain.Quote, error) {
	logger := logging.FromContext(ctx)

	var (
		quote *domain.Quote
		err   error
	)

	if category != "" {
		quote, err = s.repo.RandomByCategory(ctx, category)
	} else {
		quote, err = s.repo.Random(ctx)
	}

	if err != nil {
		logger.WarnContext(ctx, "random quote selection failed",
			slog.String("category", category),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("selecting random quote: %w", err)
	}

	logger.InfoContext(ctx, "served random quote",
		slog.Int("quote_id", quote.ID),
		slog.String("category", quote.Category),
	)

	return quote, nil
}

// ListQuotes returns the catalog, optionally filtered by exact category
// match. The result may be empty but is never nil and never an error:
// a collection endpoint returns an empty array rather than 404.
func (s *QuoteService) ListQuotes(ctx context.Context, category string) ([]domain.Quote, error) {
	logger := logging.FromContext(ctx)

	var (
		quotes []domain.Quote
		err    error
	)

	if category != "" {
		quotes, err = s.repo.ListByCategory(ctx, category)
	} else {
		quotes, err = s.repo.List(ctx)
	}

	if err != nil {
		logger.ErrorContext(ctx, "listing quotes failed",
			slog.String("category", category),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	logger.InfoContext(ctx, "served quote list",
		slog.String("category", category),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}
