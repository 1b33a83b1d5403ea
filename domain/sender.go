package domain

import "context"

type SenderRepo interface {
	SendRegistrationReceipt(ctx context.Context, patientID int) error
}

type SenderUseCase interface {
	SendRegistrationReceipt(ctx context.Context, patientID int) error
}
