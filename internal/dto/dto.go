// Package dto holds the request and response shapes shared by the HTTP
// handlers and the remote entity clients. Binding tags carry the validation
// rules each service enforces at its boundary.
package dto

type CustomerRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=50"`
	Surname string `json:"surname" binding:"required,min=1,max=50"`
	Email   string `json:"email" binding:"required,email,max=50"`
	Phone   string `json:"phone" binding:"required,len=10,numeric"`
	Address string `json:"address" binding:"omitempty,min=10,max=100"`
}

type CustomerResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=30"`
	Description string  `json:"description" binding:"required,max=150"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       *int    `json:"stock" binding:"required,min=0"`
}

type ProductResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type OrderRequest struct {
	CustomerID uint64             `json:"customerId" binding:"required"`
	Status     string             `json:"status" binding:"required"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// OrderLineRequest carries the caller's quantity and price. The price is
// recorded verbatim as the line's snapshot; it is not required to match the
// product's current price.
type OrderLineRequest struct {
	ProductID uint64  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type OrderResponse struct {
	ID         uint64              `json:"id"`
	CustomerID uint64              `json:"customerId"`
	Customer   string              `json:"customer"`
	Total      float64             `json:"total"`
	CreatedAt  string              `json:"createdAt"`
	Status     string              `json:"status"`
	Lines      []OrderLineResponse `json:"lines"`
}

// OrderLineResponse pairs the frozen price/quantity with the product's
// current name and description, resolved at read time.
type OrderLineResponse struct {
	ProductID   uint64  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
