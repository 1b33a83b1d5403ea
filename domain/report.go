package domain

import (
	"context"
	"time"
)

// VisitSearchRow flattens a patient matched by CNIC search together with
// their most recent visit, for the visit search screen.
type VisitSearchRow struct {
	PatientID   int        `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	CNIC        string     `json:"cnic"`
	TokenNumber int        `json:"token_number"`
	LastVisit   *time.Time `json:"last_visit"`
	DoctorName  *string    `json:"doctor_name"`
}

type DashboardSummary struct {
	RegistrationsToday int `json:"registrations_today"`
	VisitsToday        int `json:"visits_today"`
	CurrentToken       int `json:"current_token"`
}

type ReportRepo interface {
	SearchVisits(ctx context.Context, term string) (*[]VisitSearchRow, error)
	ListDoctors(ctx context.Context) (*[]SafeDoctorData, error)
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
}

type ReportUseCase interface {
	SearchVisits(ctx context.Context, term string) (*[]VisitSearchRow, error)
	ListDoctors(ctx context.Context) (*[]SafeDoctorData, error)
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
}
