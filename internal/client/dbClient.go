package client

import (
	"log"
	"time"

	"candle-shop-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Fragrance{},
		&model.FragranceSize{},
		&model.Order{},
		&model.OrderItem{},
		&model.DiscountCode{},
	)
}
