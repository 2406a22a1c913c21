package booking

import (
	"context"
	"fmt"

	"coworking/internal/repository"
)

// allocateID implements the bounded read-max/insert/retry protocol shared
// by customer, booking and service-group identifiers. The store has no
// usable auto-increment for these legacy tables, so the candidate is
// max+1; a concurrent writer can take it first, in which case the insert
// fails on the primary key and exactly one recompute-and-retry happens.
// A second collision surfaces ErrConflict rather than looping.
func allocateID(ctx context.Context, maxID func(ctx context.Context) (int64, error), insert func(id int64) error) (int64, error) {
	max, err := maxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read max id: %w", err)
	}
	candidate := max + 1

	err = insert(candidate)
	if err == nil {
		return candidate, nil
	}
	if !repository.IsDuplicateKey(err) {
		return 0, err
	}

	max, err = maxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read max id after collision: %w", err)
	}
	candidate = max + 1

	err = insert(candidate)
	if err == nil {
		return candidate, nil
	}
	if repository.IsDuplicateKey(err) {
		return 0, fmt.Errorf("%w: identifier %d taken twice", ErrConflict, candidate)
	}
	return 0, err
}
