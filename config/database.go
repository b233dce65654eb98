package config

import (
	"fmt"
	"log"
	"os"

	"hms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev", "":
		user = GetEnvDefault("DEV_DB_USER", "hms")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = GetEnvDefault("DEV_DB_HOST", "localhost")
		port = GetEnvDefault("DEV_DB_PORT", "5432")
		name = GetEnvDefault("DEV_DB_NAME", "hms")
	case "qc":
		user = os.Getenv("QC_DB_USER")
		password = os.Getenv("QC_DB_PASSWORD")
		host = os.Getenv("QC_DB_HOST")
		port = os.Getenv("QC_DB_PORT")
		name = os.Getenv("QC_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	sslMode := GetEnvDefault("DB_SSLMODE", "disable")
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslMode)
}

func ConnectDB() {
	var err error
	env := os.Getenv("ENV")
	dsn := getDBConfigByEnv(env)

	// TranslateError để lỗi vi phạm unique index trả về gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo/cập nhật schema cho toàn bộ models
func MigrateDB() error {
	return DB.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.Invoice{},
		&models.Payment{},
		&models.Setting{},
		&models.Service{},
	)
}
