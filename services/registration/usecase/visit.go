package usecase

import (
	"context"
	"hospital/domain"
	"time"
)

type visitUseCase struct {
	repo    domain.VisitRepo
	TimeOut time.Duration
}

func NewVisitUseCase(repo domain.VisitRepo, to time.Duration) domain.VisitUseCase {
	return &visitUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (vu *visitUseCase) AddVisitUC(ctx context.Context, patientID int) (*domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, vu.TimeOut)
	defer cancel()

	return vu.repo.AddVisit(ctx, patientID)
}

func (vu *visitUseCase) ListVisits(ctx context.Context) (*[]domain.VisitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, vu.TimeOut)
	defer cancel()

	return vu.repo.ListVisits(ctx)
}
