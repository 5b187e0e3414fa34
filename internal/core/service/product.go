package service

import (
	"context"
	"fmt"
	"time"

	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/dto"
	"github.com/storely/basket/internal/core/logger"
	"github.com/storely/basket/internal/core/port"
)

const productCacheTTL = 5 * time.Minute

// ProductService fronts the catalog for the HTTP surface. Single-product
// reads go through a cache; batch resolution used by the basket does not,
// so basket mutations always see live stock.
type ProductService struct {
	productRepository port.ProductPort
	productCache      port.CachePort[domain.Product]
}

func NewProductService(productRepository port.ProductPort, productCache port.CachePort[domain.Product]) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		productCache:      productCache,
	}
}

func (s *ProductService) getCacheKey(productID domain.ID) string {
	return fmt.Sprintf("product:%s", productID)
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(request.Name, request.Description, domain.NewAmountFromCents(request.Price), request.Stock)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  request.Name,
			"price": request.Price,
			"stock": request.Stock,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

// UpdateStock sets the catalog stock level and records a stock-changed
// event with it, then drops the cached copy so reads see the new level.
func (s *ProductService) UpdateStock(ctx context.Context, id domain.ID, stock int) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := domain.NewProductStockChangedEvent(id, stock, product.Stock, time.Now())
	if err := s.productRepository.UpdateStockWithOutbox(ctx, id, stock, event); err != nil {
		logger.Error(ctx, "product: stock update failed", err, map[string]any{
			"product_id": id,
			"stock":      stock,
		})
		return nil, err
	}

	if err := s.productCache.Del(ctx, s.getCacheKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{
			"product_id": id,
		})
	}

	product.Stock = stock
	product.UpdatedAt = time.Now()

	logger.Info(ctx, "Product stock updated", map[string]any{
		"product_id": id,
		"stock":      stock,
	})

	return product, nil
}
