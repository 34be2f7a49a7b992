package model

import "time"

type Budget struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"index;not null" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`
	// Always > 0, enforced by the validators before anything hits the db
	Amount float64 `gorm:"not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Expenses []Expense `gorm:"foreignKey:BudgetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"expenses,omitempty"`
}
