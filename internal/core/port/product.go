package port

import (
	"context"

	"github.com/storely/basket/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductPort is the product catalog contract. It is the single source of
// truth for price and stock; basket mutations always re-resolve through it.
type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	// GetByID fails with a not-found ServiceError when the id is unresolvable.
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	// GetByIDs resolves a batch of ids in one call. Unresolvable ids are
	// silently dropped from the result; ordering is the catalog's own.
	GetByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// UpdateStockWithOutbox sets the stock level and records the event in
	// the same transaction.
	UpdateStockWithOutbox(ctx context.Context, id domain.ID, stock int, event domain.Event) error
}
