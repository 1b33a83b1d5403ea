package repository

import (
	"hospital/domain"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database. MaxOpenConns(1) keeps every
// goroutine on the same connection, so the single :memory: database is shared
// and concurrent writes serialize the way a real server would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not access underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Patient{},
		&domain.Relation{},
		&domain.Visit{},
		&domain.GlobalSetting{},
	)
	if err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	return db
}

func seedCounter(t *testing.T, db *gorm.DB, lastToken int, lastTokenDate time.Time) {
	t.Helper()

	setting := domain.GlobalSetting{
		ID:            domain.GlobalSettingID,
		LastToken:     lastToken,
		LastTokenDate: lastTokenDate,
	}
	if err := db.Create(&setting).Error; err != nil {
		t.Fatalf("could not seed counter: %v", err)
	}
}

func validPayload() *domain.RegistrationPayload {
	return &domain.RegistrationPayload{
		Name:          "Ali",
		FatherName:    "Ahmed",
		Email:         "ali@example.com",
		Identity:      domain.IdentitySelf,
		CNIC:          "12345-1111111-1",
		RegCard:       domain.RegCardNone,
		ContactNumber: "03001234567",
		Education:     "Matric",
		Age:           30,
		YearsMarried:  5,
		Occupation:    "Farmer",
		Address:       "House 12, Street 4, Rawalpindi",
		CatchmentArea: domain.CatchmentUrban,
		AmountPaid:    100,
	}
}
