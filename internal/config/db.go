package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and migrates the given models.
func Connect(ctx context.Context, dsn string, models ...interface{}) error {
	if dsn == "" {
		return ErrMissingEnvironmentVariables
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if len(models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	DB = db
	return nil
}
