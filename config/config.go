package config

import (
	"log"
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_api_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	Seed(DB)

	log.Println("Database connected and migrated successfully")
}

// Seed ensures the recognized role groups exist, and optionally creates a
// staff admin account when ADMIN_USERNAME / ADMIN_PASSWORD are set.
func Seed(db *gorm.DB) {
	for _, name := range []string{models.GroupManager, models.GroupDeliveryCrew} {
		db.FirstOrCreate(&models.Group{}, models.Group{Name: name})
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminUser == "" || adminPass == "" {
		return
	}
	var existing models.User
	if err := db.Where("username = ?", adminUser).First(&existing).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}
	admin := models.User{Username: adminUser, PasswordHash: string(hash), IsStaff: true}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
	}
}

// SetTestDB swaps the active database handle; used by handler tests.
func SetTestDB(db *gorm.DB) {
	DB = db
}
