package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storely/basket/internal/adapters/http/handlers"
	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/dto"
	"github.com/storely/basket/internal/core/port"
	"github.com/storely/basket/internal/core/service"
	"github.com/storely/basket/internal/core/serviceerrors"
)

type BasketController struct {
	registryService *service.RegistryService
	storeFactory    port.BasketStoreFactory
	catalog         port.ProductPort
	locker          port.LockerPort
	lockTTL         time.Duration
	idempotency     *service.IdempotencyService[domain.BasketLine]
}

type BasketItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Stock     int    `json:"stock"`
	Quantity  int    `json:"quantity"`
}

type BasketLineResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type BasketResponse struct {
	ID        string               `json:"id"`
	Items     []BasketItemResponse `json:"items"`
	ItemCount int                  `json:"item_count"`
	SubTotal  int                  `json:"sub_total"`
}

type CreateBasketResponse struct {
	ID string `json:"id"`
}

func NewBasketItemResponse(product *domain.Product) BasketItemResponse {
	return BasketItemResponse{
		ProductID: string(product.ID),
		Name:      product.Name,
		Price:     int(product.Price),
		Stock:     product.Stock,
		Quantity:  product.Quantity,
	}
}

func NewBasketLineResponse(line *domain.BasketLine) BasketLineResponse {
	return BasketLineResponse{
		ProductID: string(line.ProductID),
		Quantity:  line.Quantity,
	}
}

func NewBasketController(
	registryService *service.RegistryService,
	storeFactory port.BasketStoreFactory,
	catalog port.ProductPort,
	locker port.LockerPort,
	lockTTL time.Duration,
	idempotency *service.IdempotencyService[domain.BasketLine],
) *BasketController {
	return &BasketController{
		registryService: registryService,
		storeFactory:    storeFactory,
		catalog:         catalog,
		locker:          locker,
		lockTTL:         lockTTL,
		idempotency:     idempotency,
	}
}

// resolveBasket validates the basket id, checks the registry and returns a
// basket service scoped to it. A nil return means the error response has
// already been written.
func (bc *BasketController) resolveBasket(c *gin.Context) *service.BasketService {
	basketID := c.Param("basket_id")
	if !domain.ValidateID(basketID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid basket ID"))
		return nil
	}
	scope := domain.ID(basketID)
	if err := bc.registryService.Exists(c.Request.Context(), scope); err != nil {
		handlers.HandleError(c, err)
		return nil
	}
	return service.NewBasketService(scope, bc.storeFactory.For(scope), bc.catalog, bc.locker, bc.lockTTL, bc.idempotency)
}

func (bc *BasketController) resolveProductID(c *gin.Context) (domain.ID, bool) {
	productID := c.Param("product_id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return "", false
	}
	return domain.ID(productID), true
}

// CreateBasket godoc
// @Summary     Create a basket
// @Description Registers a new empty basket and returns its ID
// @Tags        baskets
// @Produce     json
// @Success     201 {object} CreateBasketResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/baskets [post]
func (bc *BasketController) CreateBasket(c *gin.Context) {
	id, err := bc.registryService.Create(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateBasketResponse{ID: string(id)})
}

// GetBasket godoc
// @Summary     Get a basket
// @Description Returns the basket items with their current catalog data, the line count and the sub-total
// @Tags        baskets
// @Produce     json
// @Param       basket_id path     string true "Basket ID"
// @Success     200       {object} BasketResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id} [get]
func (bc *BasketController) GetBasket(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}

	ctx := c.Request.Context()
	products, err := basket.All(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	subTotal, err := basket.SubTotal(ctx)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]BasketItemResponse, len(products))
	for i, product := range products {
		items[i] = NewBasketItemResponse(product)
	}

	c.JSON(http.StatusOK, BasketResponse{
		ID:        c.Param("basket_id"),
		Items:     items,
		ItemCount: len(items),
		SubTotal:  int(subTotal),
	})
}

// ClearBasket godoc
// @Summary     Clear a basket
// @Description Removes every item from the basket
// @Tags        baskets
// @Param       basket_id path string true "Basket ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id} [delete]
func (bc *BasketController) ClearBasket(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	if err := basket.Clear(c.Request.Context()); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary     Add an item
// @Description Adds a quantity of a product to the basket, merging with any existing line. Supports idempotent retries.
// @Tags        baskets
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string             false "Idempotency key"
// @Param       basket_id       path     string             true  "Basket ID"
// @Param       request         body     dto.AddItemRequest true  "Item data"
// @Success     201             {object} BasketLineResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id}/items [post]
func (bc *BasketController) AddItem(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	var request dto.AddItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	line, err := basket.AddWithIdempotency(c.Request.Context(), idempotencyKey, &domain.Product{ID: request.ProductID}, request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBasketLineResponse(line))
}

// UpdateItem godoc
// @Summary     Update an item
// @Description Sets the quantity of a basket line. Quantity zero removes the line.
// @Tags        baskets
// @Accept      json
// @Produce     json
// @Param       basket_id  path     string                true "Basket ID"
// @Param       product_id path     string                true "Product ID"
// @Param       request    body     dto.UpdateItemRequest true "New quantity"
// @Success     200        {object} BasketLineResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     404        {object} handlers.ErrorResponse
// @Failure     409        {object} handlers.ErrorResponse
// @Failure     422        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id}/items/{product_id} [put]
func (bc *BasketController) UpdateItem(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	productID, ok := bc.resolveProductID(c)
	if !ok {
		return
	}
	var request dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := basket.Update(c.Request.Context(), &domain.Product{ID: productID}, *request.Quantity); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, BasketLineResponse{ProductID: string(productID), Quantity: *request.Quantity})
}

// GetItem godoc
// @Summary     Get an item
// @Description Returns a single basket line as stored
// @Tags        baskets
// @Produce     json
// @Param       basket_id  path     string true "Basket ID"
// @Param       product_id path     string true "Product ID"
// @Success     200        {object} BasketLineResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     404        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id}/items/{product_id} [get]
func (bc *BasketController) GetItem(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	productID, ok := bc.resolveProductID(c)
	if !ok {
		return
	}
	line, err := basket.Get(c.Request.Context(), &domain.Product{ID: productID})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if line == nil {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("item not in basket"))
		return
	}
	c.JSON(http.StatusOK, NewBasketLineResponse(line))
}

// RemoveItem godoc
// @Summary     Remove an item
// @Description Removes a basket line. Removing an absent line is a no-op.
// @Tags        baskets
// @Param       basket_id  path string true "Basket ID"
// @Param       product_id path string true "Product ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id}/items/{product_id} [delete]
func (bc *BasketController) RemoveItem(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	productID, ok := bc.resolveProductID(c)
	if !ok {
		return
	}
	if err := basket.Remove(c.Request.Context(), &domain.Product{ID: productID}); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshBasket godoc
// @Summary     Refresh a basket
// @Description Clamps every line whose quantity exceeds current stock down to the available stock
// @Tags        baskets
// @Produce     json
// @Param       basket_id path     string true "Basket ID"
// @Success     200       {object} BasketResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     409       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/baskets/{basket_id}/refresh [post]
func (bc *BasketController) RefreshBasket(c *gin.Context) {
	basket := bc.resolveBasket(c)
	if basket == nil {
		return
	}
	if err := basket.Refresh(c.Request.Context()); err != nil {
		handlers.HandleError(c, err)
		return
	}
	bc.GetBasket(c)
}
