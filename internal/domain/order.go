package domain

import "time"

// Order references a customer by id only; the order service never owns
// customer or product data. The total is never stored, it is derived from
// the lines on every read.
type Order struct {
	ID         uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64      `json:"customerId" gorm:"not null;index"`
	Status     string      `json:"status" gorm:"size:20;not null"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	Lines      []OrderLine `json:"lines" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderLine belongs to exactly one order; deleting the order deletes its
// lines. ProductID is a weak reference into the product service. Price is a
// snapshot taken at write time and is never resynced to the live product.
type OrderLine struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64  `json:"orderId" gorm:"not null;index"`
	ProductID uint64  `json:"productId" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}

// Total derives the order total from its current lines.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
