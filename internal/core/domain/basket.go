package domain

// BasketLine is one product's presence in a basket: the stored
// (product id, quantity) pair. Lines with quantity 0 are never stored;
// BasketService removes them instead.
type BasketLine struct {
	ProductID ID  `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func NewBasketLine(productID ID, quantity int) *BasketLine {
	return &BasketLine{
		ProductID: productID,
		Quantity:  quantity,
	}
}
