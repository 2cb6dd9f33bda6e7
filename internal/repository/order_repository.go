package repository

import (
	"ecommerce-msv/internal/domain"
)

type OrderRepository interface {
	FindAll() ([]domain.Order, error)
	FindByID(id uint64) (*domain.Order, error)
	Save(order *domain.Order) error
	// ReplaceLines updates the order's mutable fields and swaps the full
	// line set in one local transaction.
	ReplaceLines(order *domain.Order, lines []domain.OrderLine) error
	UpdateStatus(id uint64, status string) error
	DeleteByID(id uint64) error
	CountByCustomerID(customerID uint64) (int64, error)
	CountByProductID(productID uint64) (int64, error)
}
