package dto

import "github.com/storely/basket/internal/core/domain"

type AddItemRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type UpdateItemRequest struct {
	// Quantity is the absolute target; 0 removes the line.
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}
