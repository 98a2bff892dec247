package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/winelabelmaker/winelabel-go/config"
	"github.com/winelabelmaker/winelabel-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('User', 'Admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE request_status AS ENUM ('Pending', 'InProgress', 'QuoteSent', 'PaymentConfirmed', 'Completed', 'Rejected'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	Migrate()

	log.Println("Database connected and migrated")
}

// Migrate creates the enum types and synchronizes the schema.
func Migrate() {
	createEnums()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Message{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
}

// InitWithGormDB replaces the global handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// SeedAdmin creates the back-office admin account on first start.
// Credentials come from the environment; nothing happens when they are unset
// or the account already exists.
func SeedAdmin() {
	if config.AdminEmail == "" || config.AdminPassword == "" {
		return
	}

	var existing models.User
	err := DB.Where("email = ?", config.AdminEmail).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to look up admin account: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		ID:          uuid.NewString(),
		Email:       config.AdminEmail,
		Password:    string(hashed),
		Name:        config.AdminName,
		Surname:     config.AdminSurname,
		CompanyName: config.AdminCompany,
		Role:        models.UserRoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", admin.Email)
}
