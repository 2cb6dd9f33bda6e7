package mysql

import (
	"errors"

	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Save(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) DeleteByID(id uint64) error {
	return r.db.Delete(&domain.Product{}, id).Error
}
