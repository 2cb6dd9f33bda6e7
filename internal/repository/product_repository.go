package repository

import (
	"ecommerce-msv/internal/domain"
)

type ProductRepository interface {
	FindAll() ([]domain.Product, error)
	FindByID(id uint64) (*domain.Product, error)
	Save(product *domain.Product) error
	DeleteByID(id uint64) error
}
