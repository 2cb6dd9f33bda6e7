package mysql

import (
	"errors"

	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/repository"

	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindAll() ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) FindByID(id uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) FindByEmail(email string) (*domain.Customer, error) {
	return r.findByField("email", email)
}

func (r *customerRepo) FindByPhone(phone string) (*domain.Customer, error) {
	return r.findByField("phone", phone)
}

func (r *customerRepo) findByField(field, value string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.Where(field+" = ?", value).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) Save(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) DeleteByID(id uint64) error {
	return r.db.Delete(&domain.Customer{}, id).Error
}
