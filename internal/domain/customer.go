package domain

// Customer is owned exclusively by the customer service. Email and phone are
// unique across all customers; uniqueness is checked in the service layer
// before insert/update, the DB index is a backstop only.
type Customer struct {
	ID      uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"size:50;not null"`
	Surname string `json:"surname" gorm:"size:50;not null"`
	Email   string `json:"email" gorm:"size:50;not null;uniqueIndex"`
	Phone   string `json:"phone" gorm:"size:10;not null;uniqueIndex"`
	Address string `json:"address" gorm:"size:100"`
}
