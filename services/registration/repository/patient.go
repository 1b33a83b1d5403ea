package repository

import (
	"context"
	"errors"
	"fmt"
	"hospital/domain"

	"gorm.io/gorm"
)

type patientRepository struct {
	db      *gorm.DB
	counter domain.CounterRepo
}

func NewPatientRepository(database *gorm.DB, counter domain.CounterRepo) domain.PatientRepo {
	return &patientRepository{
		db:      database,
		counter: counter,
	}
}

// relationLessCNIC matches patients that hold the CNIC themselves. A patient
// registered through a relation may legitimately repeat a CNIC that another
// patient carries as their own.
const relationLessCNIC = "cnic = ? AND NOT EXISTS (SELECT 1 FROM relations WHERE relations.patient_id = patients.patient_id)"

func (pr *patientRepository) RegisterPatient(ctx context.Context, payload *domain.RegistrationPayload, withVisit bool) (*domain.Patient, error) {
	patient := payload.ToPatient()

	if len(patient.Relations) == 0 {
		var existing domain.Patient
		err := pr.db.WithContext(ctx).Where(relationLessCNIC, patient.CNIC).First(&existing).Error
		if err == nil {
			return nil, domain.ErrDuplicateCNIC
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("could not check for duplicate CNIC: %v", err)
		}
	}

	token, err := pr.counter.NextToken(ctx)
	if err != nil {
		return nil, err
	}
	patient.TokenNumber = token

	tx := pr.db.Begin()
	if err := tx.Error; err != nil {
		return nil, fmt.Errorf("could not begin transaction: %v", err)
	}

	if err := tx.WithContext(ctx).Create(&patient).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not insert patient: %v", err)
	}

	if withVisit {
		visit := domain.Visit{
			PatientID:   patient.PatientID,
			TokenNumber: token,
		}
		if err := tx.WithContext(ctx).Create(&visit).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not insert visit: %v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit transaction: %v", err)
	}

	return &patient, nil
}

func (pr *patientRepository) GetPatientByID(ctx context.Context, id int) (*domain.PatientDetail, error) {
	var patient domain.Patient
	err := pr.db.WithContext(ctx).Preload("Relations").Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not fetch patient: %v", err)
	}

	detail := &domain.PatientDetail{Patient: patient}

	var visit domain.Visit
	err = pr.db.WithContext(ctx).Where("patient_id = ?", id).Order("created_at DESC").First(&visit).Error
	if err == nil {
		detail.LastVisit = &visit.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("could not fetch last visit: %v", err)
	}

	if patient.DoctorID != nil {
		var doctor domain.User
		err := pr.db.WithContext(ctx).Where("user_id = ? AND role = ?", *patient.DoctorID, domain.RoleDoctor).First(&doctor).Error
		if err == nil {
			detail.Doctor = &domain.SafeDoctorData{UserID: doctor.UserID, Name: doctor.Name}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("could not fetch doctor: %v", err)
		}
	}

	return detail, nil
}

// UpdatePatient replaces the demographic fields and reconciles relation rows
// by their surrogate ID. Token number, amount paid and visit history are
// never touched here.
func (pr *patientRepository) UpdatePatient(ctx context.Context, id int, payload *domain.RegistrationPayload) (*domain.Patient, error) {
	var patient domain.Patient
	err := pr.db.WithContext(ctx).Preload("Relations").Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not fetch patient: %v", err)
	}

	tx := pr.db.Begin()
	if err := tx.Error; err != nil {
		return nil, fmt.Errorf("could not begin transaction: %v", err)
	}

	updates := map[string]interface{}{
		"name":            payload.Name,
		"father_name":     payload.FatherName,
		"email":           payload.Email,
		"identity":        payload.Identity,
		"cnic":            payload.CNIC,
		"reg_card":        payload.RegCard,
		"reg_card_number": payload.RegCardNumber,
		"contact_number":  payload.ContactNumber,
		"education":       payload.Education,
		"age":             payload.Age,
		"years_married":   payload.YearsMarried,
		"occupation":      payload.Occupation,
		"address":         payload.Address,
		"catchment_area":  payload.CatchmentArea,
		"doctor_id":       payload.DoctorID,
	}
	if err := tx.WithContext(ctx).Model(&domain.Patient{}).Where("patient_id = ?", id).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not update patient: %v", err)
	}

	keep := make(map[int]bool)
	for _, rel := range payload.Relations {
		if rel.Kind == domain.RelationNone {
			continue
		}
		if rel.ID == 0 {
			row := domain.Relation{
				PatientID: id,
				Kind:      rel.Kind,
				Name:      rel.Name,
				CNIC:      rel.CNIC,
			}
			if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("could not insert relation: %v", err)
			}
			keep[row.ID] = true
			continue
		}

		res := tx.WithContext(ctx).Model(&domain.Relation{}).
			Where("id = ? AND patient_id = ?", rel.ID, id).
			Updates(map[string]interface{}{
				"kind": rel.Kind,
				"name": rel.Name,
				"cnic": rel.CNIC,
			})
		if res.Error != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not update relation: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			return nil, fmt.Errorf("relation %d does not belong to patient %d", rel.ID, id)
		}
		keep[rel.ID] = true
	}

	for _, existing := range patient.Relations {
		if !keep[existing.ID] {
			if err := tx.WithContext(ctx).Delete(&domain.Relation{}, existing.ID).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("could not remove relation: %v", err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit transaction: %v", err)
	}

	var updated domain.Patient
	if err := pr.db.WithContext(ctx).Preload("Relations").Where("patient_id = ?", id).First(&updated).Error; err != nil {
		return nil, fmt.Errorf("could not reload patient: %v", err)
	}
	return &updated, nil
}

func (pr *patientRepository) SearchPatientByCNIC(ctx context.Context, term string) (*[]domain.Patient, error) {
	var patients []domain.Patient

	query := pr.db.WithContext(ctx).Preload("Relations")
	if term != "" {
		like := "%" + term + "%"
		query = query.Where(
			"cnic LIKE ? OR EXISTS (SELECT 1 FROM relations WHERE relations.patient_id = patients.patient_id AND relations.cnic LIKE ?)",
			like, like,
		)
	}

	if err := query.Order("patient_id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("could not search patients: %v", err)
	}

	return &patients, nil
}
