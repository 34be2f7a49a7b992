// Package db contains things related to SQLite
package db

import (
	"bitwise74/budget-api/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(viper.GetString("db.path")))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
	}

	// SQLite ships with foreign keys off. Without this the cascade
	// rules on users -> budgets -> expenses never fire
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Budget{}, model.Expense{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
