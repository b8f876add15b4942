package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository persists the raw product and service records.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListServices(ctx context.Context) ([]ServiceItem, error)
	FindProduct(ctx context.Context, id snowflake.ID) (*Product, error)
	FindService(ctx context.Context, id snowflake.ID) (*ServiceItem, error)
}

// ListFilter narrows the normalized listing. Search is a case-insensitive
// substring match on the item name; Type must be TypeProduct, TypeService,
// or empty for both.
type ListFilter struct {
	Search string
	Type   string
}

// Service exposes the normalized catalog.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]Item, error)

	// Find locates one item by kind and id. It returns nil, nil when the
	// record no longer exists.
	Find(ctx context.Context, itemType string, id snowflake.ID) (*Item, error)
}
