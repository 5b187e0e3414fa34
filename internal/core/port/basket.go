package port

import (
	"context"

	"github.com/storely/basket/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BasketStorePort is a keyed line store for a single basket scope. The scope
// (session id, user id) is baked into the handle by BasketStoreFactory.
// Implementations only need to be safe for concurrent use individually; the
// service layer provides no cross-call atomicity beyond the mutation lock.
type BasketStorePort interface {
	// Set upserts the line keyed by its product id.
	Set(ctx context.Context, line *domain.BasketLine) error
	// Get returns the stored line for a product id, or nil when absent.
	Get(ctx context.Context, productID domain.ID) (*domain.BasketLine, error)
	Exists(ctx context.Context, productID domain.ID) (bool, error)
	Remove(ctx context.Context, productID domain.ID) error
	// Clear removes every line in this basket's scope.
	Clear(ctx context.Context) error
	// All enumerates the stored lines. Order is unspecified.
	All(ctx context.Context) ([]*domain.BasketLine, error)
}

// BasketStoreFactory binds a basket scope to a store handle.
type BasketStoreFactory interface {
	For(scope domain.ID) BasketStorePort
}

// BasketRegistryPort tracks which basket scopes exist.
type BasketRegistryPort interface {
	Create(ctx context.Context) (domain.ID, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
}
