package usecase

import (
	"context"
	"hospital/domain"
	"time"
)

type reportUseCase struct {
	repo    domain.ReportRepo
	TimeOut time.Duration
}

func NewReportUseCase(repo domain.ReportRepo, to time.Duration) domain.ReportUseCase {
	return &reportUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (ru *reportUseCase) SearchVisits(ctx context.Context, term string) (*[]domain.VisitSearchRow, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.SearchVisits(ctx, term)
}

func (ru *reportUseCase) ListDoctors(ctx context.Context) (*[]domain.SafeDoctorData, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.ListDoctors(ctx)
}

func (ru *reportUseCase) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.DashboardSummary(ctx)
}
