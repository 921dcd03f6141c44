// Package cache provides an optional result cache for computed amortization
// schedules. Amortization is cheap and deterministic, so the cache is pure
// memoization: a miss or a failed store only costs a recomputation.
package cache

import (
	"context"
	"fmt"

	"github.com/mlattimer/loan-schedule/pkg/loans"
)

// Cache stores serialized schedules keyed by their input terms.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key returns the canonical cache key for a set of loan terms.
func Key(terms loans.Terms) string {
	return fmt.Sprintf("schedule:%g:%g:%d", terms.Principal, terms.AnnualRate, terms.TermMonths)
}
