package repository

import (
	"context"
	"errors"
	"fmt"
	"hospital/domain"

	"gorm.io/gorm"
)

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(database *gorm.DB) domain.VisitRepo {
	return &visitRepository{
		db: database,
	}
}

// AddVisit appends a visit row carrying the token the patient holds right
// now. Visit rows are never updated afterwards.
func (vr *visitRepository) AddVisit(ctx context.Context, patientID int) (*domain.Visit, error) {
	var patient domain.Patient
	err := vr.db.WithContext(ctx).Select("patient_id", "token_number").Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not fetch patient: %v", err)
	}

	visit := domain.Visit{
		PatientID:   patient.PatientID,
		TokenNumber: patient.TokenNumber,
	}
	if err := vr.db.WithContext(ctx).Create(&visit).Error; err != nil {
		return nil, fmt.Errorf("could not insert visit: %v", err)
	}

	return &visit, nil
}

func (vr *visitRepository) ListVisits(ctx context.Context) (*[]domain.VisitRecord, error) {
	var records []domain.VisitRecord

	query := `
		SELECT v.visit_id, v.patient_id, p.name AS patient_name, p.cnic,
		       v.token_number, u.name AS doctor_name, v.created_at AS visited_at
		FROM visits v
		JOIN patients p ON p.patient_id = v.patient_id
		LEFT JOIN users u ON u.user_id = p.doctor_id
		WHERE p.deleted_at IS NULL
		ORDER BY v.created_at DESC, v.visit_id DESC
	`

	if err := vr.db.WithContext(ctx).Raw(query).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("could not list visits: %v", err)
	}

	return &records, nil
}
