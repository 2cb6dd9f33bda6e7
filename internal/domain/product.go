package domain

// Product is owned exclusively by the product service.
type Product struct {
	ID          uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:30;not null"`
	Description string  `json:"description" gorm:"size:150;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
}
