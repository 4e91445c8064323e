package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-api/internal/domain"
)

var testQuotes = []domain.Quote{
	{ID: 1, Text: "first", Author: "A", Category: "life"},
	{ID: 2, Text: "second", Author: "B", Category: "wisdom"},
	{ID: 3, Text: "third", Author: "C", Category: "life"},
}

// stubRepository is a deterministic QuoteRepository for tests:
// random selection always returns the first match.
type stubRepository struct {
	quotes []domain.Quote
	err    error
}

func (r *stubRepository) GetByID(_ context.Context, id int) (*domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	for _, q := range r.quotes {
		if q.ID == id {
			return &q, nil
		}
	}

	return nil, domain.NewNotFoundError("quote", "")
}

func (r *stubRepository) Random(_ context.Context) (*domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	if len(r.quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	return &r.quotes[0], nil
}

func (r *stubRepository) RandomByCategory(ctx context.Context, category string) (*domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	matched := domain.FilterByCategory(r.quotes, category)
	if len(matched) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	return &matched[0], nil
}

func (r *stubRepository) List(_ context.Context) ([]domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.quotes, nil
}

func (r *stubRepository) ListByCategory(_ context.Context, category string) ([]domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	return domain.FilterByCategory(r.quotes, category), nil
}

func newTestService(repo *stubRepository) *QuoteService {
	return NewQuoteService(QuoteServiceConfig{
		Repository: repo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestQuoteService_GetQuoteByID(t *testing.T) {
	svc := newTestService(&stubRepository{quotes: testQuotes})
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		quote, err := svc.GetQuoteByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, testQuotes[1], *quote)
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		_, err := svc.GetQuoteByID(ctx, 999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_RandomQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("no category draws from full set", func(t *testing.T) {
		svc := newTestService(&stubRepository{quotes: testQuotes})

		quote, err := svc.RandomQuote(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, testQuotes[0], *quote)
	})

	t.Run("category restricts the draw", func(t *testing.T) {
		svc := newTestService(&stubRepository{quotes: testQuotes})

		quote, err := svc.RandomQuote(ctx, "wisdom")
		require.NoError(t, err)
		assert.Equal(t, "wisdom", quote.Category)
	})

	t.Run("empty category match is not found", func(t *testing.T) {
		svc := newTestService(&stubRepository{quotes: testQuotes})

		_, err := svc.RandomQuote(ctx, "doesnotexist")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repoErr := errors.New("boom")
		svc := newTestService(&stubRepository{err: repoErr})

		_, err := svc.RandomQuote(ctx, "")
		assert.True(t, errors.Is(err, repoErr))
	})
}

func TestQuoteService_ListQuotes(t *testing.T) {
	svc := newTestService(&stubRepository{quotes: testQuotes})
	ctx := context.Background()

	t.Run("no category returns full catalog", func(t *testing.T) {
		quotes, err := svc.ListQuotes(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, testQuotes, quotes)
	})

	t.Run("category filters", func(t *testing.T) {
		quotes, err := svc.ListQuotes(ctx, "life")
		require.NoError(t, err)
		assert.Equal(t, []domain.Quote{testQuotes[0], testQuotes[2]}, quotes)
	})

	t.Run("unknown category returns empty list, not an error", func(t *testing.T) {
		quotes, err := svc.ListQuotes(ctx, "doesnotexist")
		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})
}
