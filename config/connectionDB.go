package config

import (
	"log"
	"os"

	"autocatalog/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var enumTypes = map[string]string{
	"user_role":      "'ADMIN', 'STORE', 'SELLER', 'INDIVIDUAL_SELLER', 'BUYER'",
	"car_status":     "'AVAILABLE', 'SOLD'",
	"fuel_type":      "'GASOLINE', 'ETHANOL', 'FLEX', 'DIESEL', 'ELECTRIC', 'HYBRID'",
	"transmission":   "'MANUAL', 'AUTOMATIC', 'CVT'",
	"direction_type": "'MECHANICAL', 'HYDRAULIC', 'ELECTRIC'",
	"drive_type":     "'FWD', 'RWD', 'AWD'",
	"roof_type":      "'NONE', 'SUNROOF', 'PANORAMIC'",
	"audit_action":   "'login_success', 'login_failed', 'registered'",
}

func ConnectionDb() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		log.Fatalf("error connect to database %s", err)
	}

	for name, values := range enumTypes {
		statement := "DO $$ BEGIN CREATE TYPE " + name + " AS ENUM (" + values + "); " +
			"EXCEPTION WHEN duplicate_object THEN null; END $$;"
		if err := db.Exec(statement).Error; err != nil {
			log.Fatalf("error create enum %s: %s", name, err)
		}
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Store{},
		&entity.Seller{},
		&entity.Car{},
		&entity.AuditLog{},
	); err != nil {
		log.Fatalf("error migrate database %s", err)
	}

	return db
}
