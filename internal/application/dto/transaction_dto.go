package dto

import "time"

// RecordMovementRequest body para POST /api/transactions.
type RecordMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Notes     string `json:"notes" validate:"max=500"`
}

// StockTransactionResponse salida de una entrada del libro.
type StockTransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordMovementResponse movimiento registrado + producto actualizado.
type RecordMovementResponse struct {
	Transaction StockTransactionResponse `json:"transaction"`
	Product     ProductResponse          `json:"product"`
}

// TransactionListResponse lista paginada del libro de movimientos.
type TransactionListResponse struct {
	Items []StockTransactionResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
