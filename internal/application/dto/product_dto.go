package dto

import "time"

// CreateProductRequest entrada para crear un producto. El stock actual no se
// fija aquí: nace en 0 y se mueve solo vía movimientos.
type CreateProductRequest struct {
	SKU          string `json:"sku" validate:"required,min=1,max=255"`
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Description  string `json:"description"`
	MinimumStock int64  `json:"minimum_stock" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto. El SKU se puede
// corregir pero la intención es que sea inmutable una vez en uso.
type UpdateProductRequest struct {
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=255"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description"`
	MinimumStock *int64  `json:"minimum_stock" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto. CurrentStock se recalcula desde el
// libro de movimientos en cada lectura.
type ProductResponse struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MinimumStock int64     `json:"minimum_stock"`
	CurrentStock int64     `json:"current_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockStatusResponse estado derivado del stock de un producto.
type StockStatusResponse struct {
	ProductID    string `json:"product_id"`
	CurrentStock int64  `json:"current_stock"`
	MinimumStock int64  `json:"minimum_stock"`
	BelowMinimum bool   `json:"below_minimum"`
}
