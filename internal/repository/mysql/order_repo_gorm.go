package mysql

import (
	"errors"

	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Lines").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Lines").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// Save persists the order header and its lines in one transaction; gorm
// creates the association rows together with the parent.
func (r *orderRepo) Save(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) ReplaceLines(order *domain.Order, lines []domain.OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&domain.OrderLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].OrderID = order.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{
				"customer_id": order.CustomerID,
				"status":      order.Status,
			}).Error
	})
}

func (r *orderRepo) UpdateStatus(id uint64, status string) error {
	return r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteByID removes the order and its lines. The line delete is explicit so
// the cascade does not depend on the DB-level constraint being present.
func (r *orderRepo) DeleteByID(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
}

func (r *orderRepo) CountByCustomerID(customerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func (r *orderRepo) CountByProductID(productID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.OrderLine{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
