package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/port/mock"
	"github.com/storely/basket/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

const testScope = domain.ID("ffeeddccbbaa998877665544")

type basketMocks struct {
	store   *mock.MockBasketStorePort
	catalog *mock.MockProductPort
	locker  *mock.MockLockerPort
}

func setupBasketService(t *testing.T) (*BasketService, basketMocks) {
	ctrl := gomock.NewController(t)
	m := basketMocks{
		store:   mock.NewMockBasketStorePort(ctrl),
		catalog: mock.NewMockProductPort(ctrl),
		locker:  mock.NewMockLockerPort(ctrl),
	}
	svc := NewBasketService(testScope, m.store, m.catalog, m.locker, 5*time.Second, nil)
	return svc, m
}

// allowLocking lets mutation tests focus on store/catalog interactions.
func (m basketMocks) allowLocking() {
	m.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	m.locker.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func catalogProduct(id domain.ID, price domain.Amount, stock int) *domain.Product {
	return &domain.Product{ID: id, Name: "Product " + string(id), Price: price, Stock: stock}
}

func TestBasketService_Add(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccd1")

	t.Run("no existing line behaves like update", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Set(gomock.Any(), &domain.BasketLine{ProductID: productID, Quantity: 3}).Return(nil)

		if err := svc.Add(context.Background(), &domain.Product{ID: productID}, 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("existing line merges quantities", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.store.EXPECT().Get(gomock.Any(), productID).Return(&domain.BasketLine{ProductID: productID, Quantity: 2}, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Set(gomock.Any(), &domain.BasketLine{ProductID: productID, Quantity: 5}).Return(nil)

		if err := svc.Add(context.Background(), &domain.Product{ID: productID}, 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("merged quantity exceeding stock fails and leaves line unchanged", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		// stock 5, stored 3, adding 3 => target 6 > 5
		m.store.EXPECT().Get(gomock.Any(), productID).Return(&domain.BasketLine{ProductID: productID, Quantity: 3}, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)

		err := svc.Add(context.Background(), &domain.Product{ID: productID}, 3)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindQuantityExceeded) {
			t.Fatalf("expected quantity exceeded error, got %v", err)
		}
	})

	t.Run("store read error propagates", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, errors.New("redis down"))

		if err := svc.Add(context.Background(), &domain.Product{ID: productID}, 1); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestBasketService_Update(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccd1")

	t.Run("quantity within stock writes line", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Set(gomock.Any(), &domain.BasketLine{ProductID: productID, Quantity: 5}).Return(nil)

		if err := svc.Update(context.Background(), &domain.Product{ID: productID}, 5); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("stale stock on caller reference is ignored", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		// caller claims stock 100, catalog says 2
		stale := &domain.Product{ID: productID, Stock: 100}
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 2), nil)

		err := svc.Update(context.Background(), stale, 3)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindQuantityExceeded) {
			t.Fatalf("expected quantity exceeded error, got %v", err)
		}
	})

	t.Run("quantity zero removes the line", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Remove(gomock.Any(), productID).Return(nil)

		if err := svc.Update(context.Background(), &domain.Product{ID: productID}, 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("quantity zero with zero stock still removes", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 2000, 0), nil)
		m.store.EXPECT().Remove(gomock.Any(), productID).Return(nil)

		if err := svc.Update(context.Background(), &domain.Product{ID: productID}, 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("negative quantity is rejected before any collaborator call", func(t *testing.T) {
		svc, _ := setupBasketService(t)

		err := svc.Update(context.Background(), &domain.Product{ID: productID}, -1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("contended line returns conflict", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), &domain.Product{ID: productID}, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("unresolvable product propagates not found", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.catalog.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		err := svc.Update(context.Background(), &domain.Product{ID: productID}, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestBasketService_RemoveHasGetClear(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccd1")

	t.Run("remove delegates and is idempotent on absent lines", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Remove(gomock.Any(), productID).Return(nil).Times(2)

		if err := svc.Remove(context.Background(), &domain.Product{ID: productID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := svc.Remove(context.Background(), &domain.Product{ID: productID}); err != nil {
			t.Fatalf("expected no error on second remove, got %v", err)
		}
	})

	t.Run("has delegates to the store without catalog access", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Exists(gomock.Any(), productID).Return(true, nil)

		ok, err := svc.Has(context.Background(), &domain.Product{ID: productID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ok {
			t.Fatal("expected line to exist")
		}
	})

	t.Run("get returns the raw stored line", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Get(gomock.Any(), productID).Return(&domain.BasketLine{ProductID: productID, Quantity: 4}, nil)

		line, err := svc.Get(context.Background(), &domain.Product{ID: productID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line == nil || line.Quantity != 4 {
			t.Fatalf("expected quantity 4, got %+v", line)
		}
	})

	t.Run("get returns nil for absent line", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)

		line, err := svc.Get(context.Background(), &domain.Product{ID: productID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line != nil {
			t.Fatalf("expected nil line, got %+v", line)
		}
	})

	t.Run("clear delegates to the store bulk clear", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := svc.Clear(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestBasketService_All(t *testing.T) {
	p1 := domain.ID("aabbccddee112233aabbccd1")
	p2 := domain.ID("aabbccddee112233aabbccd2")

	t.Run("attaches stored quantities in catalog order", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 3},
			{ProductID: p2, Quantity: 2},
		}, nil)
		// catalog returns in its own order, not insertion order
		m.catalog.EXPECT().GetByIDs(gomock.Any(), []domain.ID{p1, p2}).Return([]*domain.Product{
			catalogProduct(p2, 500, 10),
			catalogProduct(p1, 1000, 5),
		}, nil)
		m.store.EXPECT().Get(gomock.Any(), p2).Return(&domain.BasketLine{ProductID: p2, Quantity: 2}, nil)
		m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 3}, nil)

		items, err := svc.All(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].ID != p2 || items[0].Quantity != 2 {
			t.Fatalf("expected first item %s qty 2, got %s qty %d", p2, items[0].ID, items[0].Quantity)
		}
		if items[1].ID != p1 || items[1].Quantity != 3 {
			t.Fatalf("expected second item %s qty 3, got %s qty %d", p1, items[1].ID, items[1].Quantity)
		}
	})

	t.Run("unresolvable lines are silently omitted", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 3},
			{ProductID: p2, Quantity: 2},
		}, nil)
		// p2 no longer resolvable, batch drops it
		m.catalog.EXPECT().GetByIDs(gomock.Any(), []domain.ID{p1, p2}).Return([]*domain.Product{
			catalogProduct(p1, 1000, 5),
		}, nil)
		m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 3}, nil)

		items, err := svc.All(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].ID != p1 {
			t.Fatalf("expected item %s, got %s", p1, items[0].ID)
		}
	})

	t.Run("empty basket skips the catalog entirely", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{}, nil)

		items, err := svc.All(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty result, got %d items", len(items))
		}
	})

	t.Run("catalog fault aborts the whole operation", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 3},
		}, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo down"))

		if _, err := svc.All(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestBasketService_ItemCount(t *testing.T) {
	t.Run("counts distinct lines independent of quantities", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: domain.ID("aabbccddee112233aabbccd1"), Quantity: 99},
			{ProductID: domain.ID("aabbccddee112233aabbccd2"), Quantity: 1},
		}, nil)

		count, err := svc.ItemCount(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 2 {
			t.Fatalf("expected 2, got %d", count)
		}
	})

	t.Run("empty basket counts zero", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{}, nil)

		count, err := svc.ItemCount(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 0 {
			t.Fatalf("expected 0, got %d", count)
		}
	})
}

func TestBasketService_SubTotal(t *testing.T) {
	p1 := domain.ID("aabbccddee112233aabbccd1")
	p3 := domain.ID("aabbccddee112233aabbccd3")

	expectAll := func(m basketMocks, products []*domain.Product, lines map[domain.ID]*domain.BasketLine) {
		all := make([]*domain.BasketLine, 0, len(lines))
		for _, line := range lines {
			all = append(all, line)
		}
		m.store.EXPECT().All(gomock.Any()).Return(all, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
		for id, line := range lines {
			m.store.EXPECT().Get(gomock.Any(), id).Return(line, nil)
		}
	}

	t.Run("sums price times quantity", func(t *testing.T) {
		svc, m := setupBasketService(t)

		// 3*10 + 2*5 = 40
		expectAll(m,
			[]*domain.Product{catalogProduct(p1, 10, 5), catalogProduct(p3, 5, 10)},
			map[domain.ID]*domain.BasketLine{
				p1: {ProductID: p1, Quantity: 3},
				p3: {ProductID: p3, Quantity: 2},
			})

		total, err := svc.SubTotal(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 40 {
			t.Fatalf("expected subtotal 40, got %d", total)
		}
	})

	t.Run("skips out-of-stock items without touching their lines", func(t *testing.T) {
		svc, m := setupBasketService(t)

		// p1 dropped to stock 0 but still holds a stored line
		expectAll(m,
			[]*domain.Product{catalogProduct(p1, 10, 0), catalogProduct(p3, 5, 10)},
			map[domain.ID]*domain.BasketLine{
				p1: {ProductID: p1, Quantity: 3},
				p3: {ProductID: p3, Quantity: 2},
			})

		total, err := svc.SubTotal(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 10 {
			t.Fatalf("expected subtotal 10, got %d", total)
		}
	})

	t.Run("empty basket totals zero", func(t *testing.T) {
		svc, m := setupBasketService(t)

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{}, nil)

		total, err := svc.SubTotal(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 0 {
			t.Fatalf("expected subtotal 0, got %d", total)
		}
	})
}

func TestBasketService_Refresh(t *testing.T) {
	p1 := domain.ID("aabbccddee112233aabbccd1")
	p3 := domain.ID("aabbccddee112233aabbccd3")

	t.Run("clamps under-stocked lines to current stock", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		// p1 stored 3 but stock dropped to 1; p3 is fine
		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 3},
			{ProductID: p3, Quantity: 2},
		}, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Product{
			catalogProduct(p1, 10, 1),
			catalogProduct(p3, 5, 10),
		}, nil)
		m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 3}, nil)
		m.store.EXPECT().Get(gomock.Any(), p3).Return(&domain.BasketLine{ProductID: p3, Quantity: 2}, nil)

		// the clamp re-resolves p1 and writes quantity 1
		m.catalog.EXPECT().GetByID(gomock.Any(), p1).Return(catalogProduct(p1, 10, 1), nil)
		m.store.EXPECT().Set(gomock.Any(), &domain.BasketLine{ProductID: p1, Quantity: 1}).Return(nil)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("zero stock removes the line", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 3},
		}, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Product{
			catalogProduct(p1, 10, 0),
		}, nil)
		m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 3}, nil)

		m.catalog.EXPECT().GetByID(gomock.Any(), p1).Return(catalogProduct(p1, 10, 0), nil)
		m.store.EXPECT().Remove(gomock.Any(), p1).Return(nil)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("idempotent when stock is unchanged", func(t *testing.T) {
		svc, m := setupBasketService(t)

		// both runs see quantities satisfiable, no update is issued
		for range 2 {
			m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
				{ProductID: p1, Quantity: 1},
			}, nil)
			m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Product{
				catalogProduct(p1, 10, 1),
			}, nil)
			m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 1}, nil)
		}

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error on first refresh, got %v", err)
		}
		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error on second refresh, got %v", err)
		}
	})

	t.Run("update failure aborts without rolling back prior clamps", func(t *testing.T) {
		svc, m := setupBasketService(t)
		m.allowLocking()

		m.store.EXPECT().All(gomock.Any()).Return([]*domain.BasketLine{
			{ProductID: p1, Quantity: 5},
		}, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Product{
			catalogProduct(p1, 10, 2),
		}, nil)
		m.store.EXPECT().Get(gomock.Any(), p1).Return(&domain.BasketLine{ProductID: p1, Quantity: 5}, nil)

		m.catalog.EXPECT().GetByID(gomock.Any(), p1).Return(nil, errors.New("mongo down"))

		if err := svc.Refresh(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestBasketService_AddWithIdempotency(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccd1")

	setup := func(t *testing.T) (*BasketService, basketMocks, *mock.MockCachePort[IdempotencyEntry[domain.BasketLine]]) {
		ctrl := gomock.NewController(t)
		m := basketMocks{
			store:   mock.NewMockBasketStorePort(ctrl),
			catalog: mock.NewMockProductPort(ctrl),
			locker:  mock.NewMockLockerPort(ctrl),
		}
		cache := mock.NewMockCachePort[IdempotencyEntry[domain.BasketLine]](ctrl)
		idem := NewIdempotencyService[domain.BasketLine](cache, 15*time.Minute, 50*time.Millisecond, 500*time.Millisecond)
		svc := NewBasketService(testScope, m.store, m.catalog, m.locker, 5*time.Second, idem)
		return svc, m, cache
	}

	t.Run("empty key performs a plain add", func(t *testing.T) {
		svc, m, _ := setup(t)
		m.allowLocking()

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
		m.store.EXPECT().Get(gomock.Any(), productID).Return(&domain.BasketLine{ProductID: productID, Quantity: 3}, nil)

		line, err := svc.AddWithIdempotency(context.Background(), "", &domain.Product{ID: productID}, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line == nil || line.Quantity != 3 {
			t.Fatalf("expected line with quantity 3, got %+v", line)
		}
	})

	t.Run("first claim adds and completes", func(t *testing.T) {
		svc, m, cache := setup(t)
		m.allowLocking()

		cache.EXPECT().SetNX(gomock.Any(), "idem-1", gomock.Any(), 15*time.Minute).Return(true, nil)

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 5), nil)
		m.store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
		m.store.EXPECT().Get(gomock.Any(), productID).Return(&domain.BasketLine{ProductID: productID, Quantity: 3}, nil)

		cache.EXPECT().Set(gomock.Any(), "idem-1", gomock.Any(), 15*time.Minute).Return(nil)

		line, err := svc.AddWithIdempotency(context.Background(), "idem-1", &domain.Product{ID: productID}, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line == nil || line.Quantity != 3 {
			t.Fatalf("expected line with quantity 3, got %+v", line)
		}
	})

	t.Run("failed add releases the claim", func(t *testing.T) {
		svc, m, cache := setup(t)
		m.allowLocking()

		cache.EXPECT().SetNX(gomock.Any(), "idem-2", gomock.Any(), 15*time.Minute).Return(true, nil)

		m.store.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), productID).Return(catalogProduct(productID, 1000, 1), nil)

		cache.EXPECT().Del(gomock.Any(), "idem-2").Return(nil)

		_, err := svc.AddWithIdempotency(context.Background(), "idem-2", &domain.Product{ID: productID}, 3)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindQuantityExceeded) {
			t.Fatalf("expected quantity exceeded error, got %v", err)
		}
	})
}
