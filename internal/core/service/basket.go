package service

import (
	"context"
	"fmt"
	"time"

	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/logger"
	"github.com/storely/basket/internal/core/port"
	"github.com/storely/basket/internal/core/serviceerrors"
	"github.com/storely/basket/internal/core/utils"
)

// BasketService enforces the basket mutation invariants for one basket
// scope: add merges quantities, update is the single stock-validation gate,
// a target quantity of zero removes the line, and refresh clamps stale
// quantities down to live stock. It holds no state of its own; construct
// one per request with the scoped store handle.
type BasketService struct {
	scope       domain.ID
	store       port.BasketStorePort
	catalog     port.ProductPort
	locker      port.LockerPort
	lockTTL     time.Duration
	idempotency *IdempotencyService[domain.BasketLine]
}

func NewBasketService(
	scope domain.ID,
	store port.BasketStorePort,
	catalog port.ProductPort,
	locker port.LockerPort,
	lockTTL time.Duration,
	idempotency *IdempotencyService[domain.BasketLine],
) *BasketService {
	return &BasketService{
		scope:       scope,
		store:       store,
		catalog:     catalog,
		locker:      locker,
		lockTTL:     lockTTL,
		idempotency: idempotency,
	}
}

func (s *BasketService) lockKey(productID domain.ID) string {
	return fmt.Sprintf("basket-lock:%s:%s", s.scope, productID)
}

// Add merges quantity onto any existing line for the product and delegates
// to Update with the combined target.
func (s *BasketService) Add(ctx context.Context, product *domain.Product, quantity int) error {
	target := quantity

	line, err := s.store.Get(ctx, product.ID)
	if err != nil {
		return err
	}
	if line != nil {
		target = line.Quantity + quantity
	}

	return s.Update(ctx, product, target)
}

// Update sets the stored quantity for product to an absolute target. The
// product is re-resolved from the catalog first; a stale reference passed
// by the caller is never trusted for stock or price. A target of zero
// removes the line. The stock check and the store write run under a
// per-line lock so concurrent writers on the same key cannot interleave
// between check and write.
func (s *BasketService) Update(ctx context.Context, product *domain.Product, quantity int) error {
	if quantity < 0 {
		return serviceerrors.NewInvalidRequestError("quantity must not be negative")
	}

	key := s.lockKey(product.ID)
	acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return serviceerrors.NewConflictError("basket line is being modified by another request")
	}
	defer func() {
		if err := s.locker.Release(ctx, key); err != nil {
			logger.Error(ctx, "basket: lock release failed", err, map[string]any{
				"scope":      s.scope,
				"product_id": product.ID,
			})
		}
	}()

	fresh, err := s.catalog.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}

	if !fresh.HasStock(quantity) {
		return serviceerrors.NewQuantityExceededError(
			fmt.Sprintf("quantity %d exceeds available stock %d for product %s", quantity, fresh.Stock, fresh.ID),
		)
	}

	if quantity == 0 {
		return s.Remove(ctx, fresh)
	}

	return s.store.Set(ctx, domain.NewBasketLine(fresh.ID, quantity))
}

// Remove deletes the product's line. Removing an absent line is a no-op.
func (s *BasketService) Remove(ctx context.Context, product *domain.Product) error {
	return s.store.Remove(ctx, product.ID)
}

func (s *BasketService) Has(ctx context.Context, product *domain.Product) (bool, error) {
	return s.store.Exists(ctx, product.ID)
}

func (s *BasketService) Get(ctx context.Context, product *domain.Product) (*domain.BasketLine, error) {
	return s.store.Get(ctx, product.ID)
}

func (s *BasketService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// All materializes the basket: one store enumeration, one catalog batch
// resolve, then the stored quantity is attached to each resolved product.
// Lines whose product id the catalog no longer resolves are omitted; the
// orphan line itself is left in the store untouched. Ordering follows the
// catalog's batch result, not insertion order.
func (s *BasketService) All(ctx context.Context) ([]*domain.Product, error) {
	lines, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []*domain.Product{}, nil
	}

	ids := make([]domain.ID, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		line, err := s.store.Get(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		if line == nil {
			continue
		}
		product.Quantity = line.Quantity
		items = append(items, product)
	}

	return items, nil
}

// ItemCount counts distinct stored lines, not the sum of quantities.
func (s *BasketService) ItemCount(ctx context.Context) (int, error) {
	lines, err := s.store.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// SubTotal sums price times quantity over the basket contents. Items whose
// current stock is zero are excluded from the sum; their stored lines are
// not modified by this read.
func (s *BasketService) SubTotal(ctx context.Context) (domain.Amount, error) {
	items, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	var total domain.Amount
	for _, item := range items {
		if item.OutOfStock() {
			continue
		}
		total = total.Add(item.Price.Multiply(item.Quantity))
	}

	return total, nil
}

// Refresh reconciles stored quantities with live stock: every line whose
// quantity the current stock can no longer satisfy is clamped down to the
// stock level, which removes the line when stock is zero. A failure midway
// leaves the lines already clamped as they are.
func (s *BasketService) Refresh(ctx context.Context) error {
	items, err := s.All(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.HasStock(item.Quantity) {
			continue
		}
		if err := s.Update(ctx, item, item.Stock); err != nil {
			return err
		}
		logger.Info(ctx, "basket: quantity clamped to stock", map[string]any{
			"scope":      s.scope,
			"product_id": item.ID,
			"quantity":   item.Quantity,
			"stock":      item.Stock,
		})
	}

	return nil
}

func (s *BasketService) addAndGet(ctx context.Context, product *domain.Product, quantity int) (*domain.BasketLine, error) {
	if err := s.Add(ctx, product, quantity); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, product.ID)
}

// AddWithIdempotency wraps Add with the idempotency protocol so a retried
// request does not merge the same quantity twice. An empty key skips the
// protocol entirely.
func (s *BasketService) AddWithIdempotency(ctx context.Context, idempotencyKey string, product *domain.Product, quantity int) (*domain.BasketLine, error) {
	if idempotencyKey == "" {
		return s.addAndGet(ctx, product, quantity)
	}

	payloadHash := utils.HashJSON(map[string]any{
		"scope":      s.scope,
		"product_id": product.ID,
		"quantity":   quantity,
	})

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	line, err := s.addAndGet(ctx, product, quantity)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, line)

	return line, nil
}
