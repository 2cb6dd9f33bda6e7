package repository

import (
	"ecommerce-msv/internal/domain"
)

// CustomerRepository lookups return (nil, nil) when no record matches;
// callers decide whether absence is an error.
type CustomerRepository interface {
	FindAll() ([]domain.Customer, error)
	FindByID(id uint64) (*domain.Customer, error)
	FindByEmail(email string) (*domain.Customer, error)
	FindByPhone(phone string) (*domain.Customer, error)
	Save(customer *domain.Customer) error
	DeleteByID(id uint64) error
}
