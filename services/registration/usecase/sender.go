package usecase

import (
	"context"
	"hospital/domain"
	"time"
)

type senderUseCase struct {
	repo    domain.SenderRepo
	TimeOut time.Duration
}

func NewSenderUseCase(repo domain.SenderRepo, to time.Duration) domain.SenderUseCase {
	return &senderUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (su *senderUseCase) SendRegistrationReceipt(ctx context.Context, patientID int) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.SendRegistrationReceipt(ctx, patientID)
}
