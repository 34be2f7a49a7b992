// Package model defines database models
package model

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Confirmed    bool   `gorm:"default:false" json:"-"`

	// Pending confirmation or password reset token. Nil whenever
	// neither flow is in progress
	Token *string `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Budgets []Budget `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
