package fundpool

import "context"

type Repository interface {
	// Get returns the singleton, lazily creating a zeroed row on first read.
	Get(ctx context.Context) (*FundPool, error)
	// ApplyDelta adds the delta to the singleton in a single atomic UPDATE
	// (no read-modify-write) and returns the resulting state. Derived
	// columns are recomputed inside the same statement.
	ApplyDelta(ctx context.Context, d Delta, actor string) (*FundPool, error)
	// Replace overwrites the singleton wholesale (reconciliation).
	Replace(ctx context.Context, p *FundPool) error
}
