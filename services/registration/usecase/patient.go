package usecase

import (
	"context"
	"hospital/domain"
	"time"
)

type patientUseCase struct {
	repo    domain.PatientRepo
	TimeOut time.Duration
}

func NewPatientUseCase(repo domain.PatientRepo, to time.Duration) domain.PatientUseCase {
	return &patientUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (pu *patientUseCase) RegisterPatientUC(ctx context.Context, payload *domain.RegistrationPayload, withVisit bool) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.RegisterPatient(ctx, payload, withVisit)
}

func (pu *patientUseCase) GetPatientByID(ctx context.Context, id int) (*domain.PatientDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetPatientByID(ctx, id)
}

func (pu *patientUseCase) UpdatePatient(ctx context.Context, id int, payload *domain.RegistrationPayload) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.UpdatePatient(ctx, id, payload)
}

func (pu *patientUseCase) SearchPatientByCNIC(ctx context.Context, term string) (*[]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.SearchPatientByCNIC(ctx, term)
}
