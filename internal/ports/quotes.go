// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation)
//   - Methods represent business operations, not CRUD operations
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-api/internal/domain"
)

// QuoteRepository provides read access to the quote catalog.
// The catalog is fixed at startup, so implementations are pure reads
// and safe for concurrent use without synchronization.
type QuoteRepository interface {
	// GetByID retrieves the quote with the given identifier.
	// Returns domain.ErrNotFound if no quote has that ID.
	GetByID(ctx context.Context, id int) (*domain.Quote, error)

	// Random selects one quote uniformly at random from the full catalog.
	// Returns domain.ErrNotFound only if the catalog is empty.
	Random(ctx context.Context) (*domain.Quote, error)

	// RandomByCategory selects one quote uniformly at random from the
	// quotes matching the category exactly (case-sensitive).
	// Returns domain.ErrNotFound if no quote has that category.
	RandomByCategory(ctx context.Context, category string) (*domain.Quote, error)

	// List returns the full catalog in insertion order.
	List(ctx context.Context) ([]domain.Quote, error)

	// ListByCategory returns the quotes matching the category exactly,
	// in insertion order. The result may be empty but is never nil;
	// an empty result is not an error.
	ListByCategory(ctx context.Context, category string) ([]domain.Quote, error)
}
