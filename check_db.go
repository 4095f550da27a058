package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Утилита для быстрой проверки содержимого базы
func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var partners []ds.Partner
	err = db.Find(&partners).Error
	if err != nil {
		log.Fatal("Failed to get partners:", err)
	}

	fmt.Println("Partners in database:")
	for _, partner := range partners {
		fmt.Printf("ID: %d, Name: %s, INN: %s, Status: %s\n", partner.ID, partner.Name, partner.INN, partner.Status)
	}
}
