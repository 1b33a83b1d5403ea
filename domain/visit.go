package domain

import (
	"context"
	"time"
)

// Visit is an append-only clinic attendance event. Rows are never updated
// after creation.
type Visit struct {
	VisitID     int       `gorm:"primaryKey;autoIncrement" json:"visit_id"`
	PatientID   int       `gorm:"not null;index" json:"patient_id"`
	TokenNumber int       `gorm:"not null" json:"token_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// VisitRecord is the dashboard projection of a visit joined with its patient
// and, when assigned, the attending doctor.
type VisitRecord struct {
	VisitID     int       `json:"visit_id"`
	PatientID   int       `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	CNIC        string    `json:"cnic"`
	TokenNumber int       `json:"token_number"`
	DoctorName  *string   `json:"doctor_name"`
	VisitedAt   time.Time `json:"visited_at"`
}

type VisitRepo interface {
	AddVisit(ctx context.Context, patientID int) (*Visit, error)
	ListVisits(ctx context.Context) (*[]VisitRecord, error)
}

type VisitUseCase interface {
	AddVisitUC(ctx context.Context, patientID int) (*Visit, error)
	ListVisits(ctx context.Context) (*[]VisitRecord, error)
}
