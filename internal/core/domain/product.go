package domain

import "time"

type Product struct {
	ID          ID
	Name        string
	Description string
	Price       Amount
	Stock       int
	// Quantity is transient: it carries the basket-line quantity when a
	// product is materialized through BasketService.All. It is never part
	// of the catalog record itself.
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(name string, description string, price Amount, stock int) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// HasStock reports whether stock can satisfy a target quantity of n.
// n == 0 is trivially satisfiable.
func (p *Product) HasStock(n int) bool {
	return n <= p.Stock
}

func (p *Product) OutOfStock() bool {
	return p.Stock == 0
}

type ProductStockChangedEvent struct {
	ProductID ID        `json:"product_id"`
	Stock     int       `json:"stock"`
	OldStock  int       `json:"old_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ProductStockChangedEvent) GetName() string {
	return "product.stock_changed"
}

func (e *ProductStockChangedEvent) GetEntityName() string {
	return "product"
}

func NewProductStockChangedEvent(productID ID, stock, oldStock int, updatedAt time.Time) *ProductStockChangedEvent {
	return &ProductStockChangedEvent{
		ProductID: productID,
		Stock:     stock,
		OldStock:  oldStock,
		UpdatedAt: updatedAt,
	}
}
