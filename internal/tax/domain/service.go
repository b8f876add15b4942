package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	List(ctx context.Context) ([]GSTRate, error)
	FindByID(ctx context.Context, id snowflake.ID) (*GSTRate, error)
	FindByName(ctx context.Context, name string) (*GSTRate, error)
}

type Service interface {
	List(ctx context.Context) ([]GSTRate, error)
	FindByID(ctx context.Context, id snowflake.ID) (*GSTRate, error)
	// FindByLabel resolves a display label ("GST @ 18%") to its table entry.
	// A missing label returns (nil, nil); callers treat that as a silent
	// reset, not an error.
	FindByLabel(ctx context.Context, label string) (*GSTRate, error)
	// ZeroRate returns the fallback 0% entry.
	ZeroRate(ctx context.Context) (*GSTRate, error)
}
