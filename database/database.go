package database

import (
	"fmt"
	"log"
	"os"

	"lexsuite-app/internal/domain/cases"
	"lexsuite-app/internal/domain/clients"
	"lexsuite-app/internal/domain/documents"
	"lexsuite-app/internal/domain/invoices"
	"lexsuite-app/internal/domain/profiles"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&profiles.Profile{},
		&clients.Client{},
		&cases.Case{},
		&documents.Document{},
		&invoices.Invoice{},
		&invoices.InvoiceItem{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
