package statusreset

import "context"

// TableService yields handles to named tables.
type TableService interface {
	// Table acquires a handle to the named table. It fails if the table
	// does not exist or the service cannot be reached.
	Table(ctx context.Context, name string) (TableHandle, error)
}

// TableHandle is a client-side reference to a remote named table
type TableHandle interface {
	Name() string

	// Scan issues exactly one unfiltered scan request and returns the first page.
	Scan(ctx context.Context) (*ScanPage, error)

	// UpdateItem applies a single-attribute SET to one item.
	UpdateItem(ctx context.Context, req UpdateRequest) error
}
