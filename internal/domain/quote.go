// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote represents a quotation with its author.
// Quotes are immutable: the catalog is fixed at startup and never mutated,
// so values can be shared freely across requests without locking.
type Quote struct {
	// ID is the unique positive identifier for this quote,
	// stable for the lifetime of the process.
	ID int

	// Text is the quotation itself.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Category is a free-text lowercase grouping label, used as a
	// filter key. It is not a separate entity.
	Category string
}

// Validate checks the invariants a catalog entry must satisfy.
func (q Quote) Validate() error {
	if q.ID <= 0 {
		return NewValidationError("id", "must be a positive integer")
	}

	if q.Text == "" {
		return NewValidationError("text", "cannot be empty")
	}

	if q.Author == "" {
		return NewValidationError("author", "cannot be empty")
	}

	if q.Category == "" {
		return NewValidationError("category", "cannot be empty")
	}

	if q.Category != strings.ToLower(q.Category) {
		return NewValidationError("category", "must be lowercase")
	}

	return nil
}

// FilterByCategory returns the quotes whose category matches exactly.
// The match is case-sensitive. The result preserves insertion order and
// is never nil, so an empty filter serializes as an empty JSON array.
func FilterByCategory(quotes []Quote, category string) []Quote {
	filtered := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}

	return filtered
}
