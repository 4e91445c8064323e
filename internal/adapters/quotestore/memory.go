// Package quotestore provides the in-memory quote catalog adapter.
// The catalog is embedded in the binary, parsed once at startup, and
// never mutated afterwards, so all operations are lock-free reads.
package quotestore

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/jsamuelsen/quote-api/internal/domain"
)

//go:embed quotes.json
var catalogJSON []byte

// quoteRecord is the JSON shape of a catalog entry.
type quoteRecord struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Store implements ports.QuoteRepository over a fixed in-memory catalog.
type Store struct {
	quotes []domain.Quote
	byID   map[int]int // quote ID -> index into quotes
	// intN returns a uniform value in [0, n). Swappable in tests.
	intN func(n int) int
}

// Option customizes store construction.
type Option func(*Store)

// WithRandSource overrides the random selection function.
// Intended for tests that need deterministic picks.
func WithRandSource(intN func(n int) int) Option {
	return func(s *Store) {
		s.intN = intN
	}
}

// New builds a store from the embedded catalog.
// It fails if the catalog does not parse or violates an invariant
// (duplicate IDs, empty fields, non-lowercase categories).
func New(opts ...Option) (*Store, error) {
	return NewFromJSON(catalogJSON, opts...)
}

// NewFromJSON builds a store from raw catalog JSON, preserving insertion order.
func NewFromJSON(data []byte, opts ...Option) (*Store, error) {
	var records []quoteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing quote catalog: %w", err)
	}

	store := &Store{
		quotes: make([]domain.Quote, 0, len(records)),
		byID:   make(map[int]int, len(records)),
		intN:   rand.IntN,
	}

	for i, r := range records {
		quote := domain.Quote{
			ID:       r.ID,
			Text:     r.Text,
			Author:   r.Author,
			Category: r.Category,
		}

		if err := quote.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}

		if _, dup := store.byID[quote.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: %w",
				i, domain.NewValidationError("id", "duplicate id "+strconv.Itoa(quote.ID)))
		}

		store.byID[quote.ID] = len(store.quotes)
		store.quotes = append(store.quotes, quote)
	}

	for _, opt := range opts {
		opt(store)
	}

	return store, nil
}

// GetByID retrieves the quote with the given identifier.
func (s *Store) GetByID(_ context.Context, id int) (*domain.Quote, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", strconv.Itoa(id))
	}

	q := s.quotes[idx]

	return &q, nil
}

// Random selects one quote uniformly at random from the full catalog.
func (s *Store) Random(_ context.Context) (*domain.Quote, error) {
	return s.pick(s.quotes)
}

// RandomByCategory selects one quote uniformly at random from the quotes
// matching the category exactly.
func (s *Store) RandomByCategory(_ context.Context, category string) (*domain.Quote, error) {
	return s.pick(domain.FilterByCategory(s.quotes, category))
}

// List returns the full catalog in insertion order.
func (s *Store) List(_ context.Context) ([]domain.Quote, error) {
	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out, nil
}

// ListByCategory returns the quotes matching the category exactly.
// An empty result is returned as an empty slice, not an error.
func (s *Store) ListByCategory(_ context.Context, category string) ([]domain.Quote, error) {
	return domain.FilterByCategory(s.quotes, category), nil
}

// Len returns the number of quotes in the catalog.
func (s *Store) Len() int {
	return len(s.quotes)
}

// pick returns a uniformly random element of quotes.
func (s *Store) pick(quotes []domain.Quote) (*domain.Quote, error) {
	if len(quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	q := quotes[s.intN(len(quotes))]

	return &q, nil
}

// Name identifies the store in health check results.
func (s *Store) Name() string {
	return "quotestore"
}

// Check reports the store healthy as long as the catalog is non-empty.
func (s *Store) Check(_ context.Context) error {
	if len(s.quotes) == 0 {
		return errors.New("quote catalog is empty")
	}

	return nil
}
