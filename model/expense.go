package model

import "time"

// Expense carries no user ID on purpose. Whoever owns the parent
// budget owns the expense
type Expense struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BudgetID uint `gorm:"index;not null" json:"-"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
