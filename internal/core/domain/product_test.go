package domain

import (
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	before := time.Now()
	p := NewProduct("Widget", "A fine widget", NewAmountFromCents(4999), 25)
	after := time.Now()

	if p.Name != "Widget" {
		t.Fatalf("expected name 'Widget', got %q", p.Name)
	}
	if p.Description != "A fine widget" {
		t.Fatalf("expected description 'A fine widget', got %q", p.Description)
	}
	if p.Price != 4999 {
		t.Fatalf("expected price 4999, got %d", p.Price)
	}
	if p.Stock != 25 {
		t.Fatalf("expected stock 25, got %d", p.Stock)
	}
	if p.Quantity != 0 {
		t.Fatalf("expected zero quantity, got %d", p.Quantity)
	}
	if p.ID != "" {
		t.Fatalf("expected empty ID, got %q", p.ID)
	}
	if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v not in expected range [%v, %v]", p.CreatedAt, before, after)
	}
	if p.UpdatedAt.Before(before) || p.UpdatedAt.After(after) {
		t.Fatalf("UpdatedAt %v not in expected range [%v, %v]", p.UpdatedAt, before, after)
	}
}

func TestProduct_HasStock(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		n     int
		want  bool
	}{
		{"quantity below stock", 5, 3, true},
		{"quantity equals stock", 5, 5, true},
		{"quantity above stock", 5, 6, false},
		{"zero quantity against zero stock", 0, 0, true},
		{"positive quantity against zero stock", 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock}
			if got := p.HasStock(tt.n); got != tt.want {
				t.Errorf("HasStock(%d) with stock %d = %v, want %v", tt.n, tt.stock, got, tt.want)
			}
		})
	}
}

func TestProduct_OutOfStock(t *testing.T) {
	p := &Product{Stock: 0}
	if !p.OutOfStock() {
		t.Fatal("expected out of stock with stock 0")
	}
	p.Stock = 1
	if p.OutOfStock() {
		t.Fatal("expected in stock with stock 1")
	}
}

func TestProductStockChangedEvent(t *testing.T) {
	now := time.Now()
	e := NewProductStockChangedEvent(ID("aabbccddee112233aabbccdd"), 3, 10, now)

	if e.GetName() != "product.stock_changed" {
		t.Fatalf("expected event name 'product.stock_changed', got %q", e.GetName())
	}
	if e.GetEntityName() != "product" {
		t.Fatalf("expected entity name 'product', got %q", e.GetEntityName())
	}
	if e.Stock != 3 || e.OldStock != 10 {
		t.Fatalf("expected stock 3 (old 10), got %d (old %d)", e.Stock, e.OldStock)
	}
}
