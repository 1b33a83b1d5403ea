package config

import (
	"database/sql"
	"fmt"
	"hospital/domain"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the database through lib/pq, hands the connection to GORM and
// runs migrations plus the seed rows the app cannot run without.
func BootDB() (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	enums := map[string]string{
		"identity_enum":  "'self', 'kin'",
		"reg_card_enum":  "'issued', 'none'",
		"catchment_enum": "'urban', 'rural', 'slum'",
		"relation_enum":  "'parent', 'sibling', 'child', 'spouse'",
		"role_enum":      "'admin', 'frontdesk', 'doctor'",
	}

	for name, values := range enums {
		stmt := fmt.Sprintf(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = '%s') THEN
			CREATE TYPE %s AS ENUM (%s);
		END IF;
	END $$`, name, name, values)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create %s ENUM: %w", name, err)
		}
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Patient{},
		&domain.Relation{},
		&domain.Visit{},
		&domain.GlobalSetting{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := SeedCounter(db); err != nil {
		return err
	}

	return seedAdminUser(db)
}

// SeedCounter makes the token counter singleton an install-time invariant.
// The registration path refuses to run when this row is missing.
func SeedCounter(db *gorm.DB) error {
	setting := domain.GlobalSetting{
		ID:            domain.GlobalSettingID,
		LastToken:     0,
		LastTokenDate: time.Now(),
	}
	if err := db.Where("id = ?", domain.GlobalSettingID).FirstOrCreate(&setting).Error; err != nil {
		return fmt.Errorf("failed to seed token counter: %w", err)
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := domain.User{
		Username: "admin",
		Name:     "Administrator",
		Password: string(hashed),
		Role:     domain.RoleAdmin,
	}
	if err := db.Where("username = ?", admin.Username).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
