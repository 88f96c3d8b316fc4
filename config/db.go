package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/wxwilliamc/cyre/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connection() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error Loading .env file")
	}
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic(err)
	}
	if err := Migrate(db); err != nil {
		panic(err)
	}
	DB = db
}

// Migrate keeps the schema in sync. Cascade/restrict rules live on the
// model tags, so store deletion fans out in the database, not here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Billboard{},
		&models.Category{},
		&models.Size{},
		&models.Color{},
		&models.Product{},
		&models.Image{},
		&models.Order{},
		&models.OrderItem{},
	)
}
