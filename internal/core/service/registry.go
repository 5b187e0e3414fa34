package service

import (
	"context"

	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/logger"
	"github.com/storely/basket/internal/core/port"
	"github.com/storely/basket/internal/core/serviceerrors"
)

// RegistryService manages basket scopes: every basket id handed to clients
// is minted and validated here before a store handle is opened for it.
type RegistryService struct {
	basketRegistry port.BasketRegistryPort
}

func NewRegistryService(basketRegistry port.BasketRegistryPort) *RegistryService {
	return &RegistryService{basketRegistry: basketRegistry}
}

func (s *RegistryService) Create(ctx context.Context) (domain.ID, error) {
	return s.basketRegistry.Create(ctx)
}

func (s *RegistryService) Exists(ctx context.Context, id domain.ID) error {
	_, err := s.basketRegistry.Exists(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewNotFoundError("basket not found")
		}
		logger.Error(ctx, "basket: exists check failed", err, map[string]any{
			"basket_id": id,
		})
		return err
	}

	return nil
}
