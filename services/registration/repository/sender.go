package repository

import (
	"context"
	"errors"
	"fmt"
	"hospital/domain"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type senderRepository struct {
	db            *gorm.DB
	meowClient    *whatsmeow.Client
	mailDialer    *gomail.Dialer
	emailSender   string
	hospitalPhone string
}

func NewSenderRepository(db *gorm.DB, meow *whatsmeow.Client, dialer *gomail.Dialer, emailSender, hospitalPhone string) domain.SenderRepo {
	return &senderRepository{
		db:            db,
		meowClient:    meow,
		mailDialer:    dialer,
		emailSender:   emailSender,
		hospitalPhone: hospitalPhone,
	}
}

// SendRegistrationReceipt tells the patient their token for today. Both
// channels are best effort; the registration itself is already committed by
// the time this runs.
func (sr *senderRepository) SendRegistrationReceipt(ctx context.Context, patientID int) error {
	var patient domain.Patient
	err := sr.db.WithContext(ctx).Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return fmt.Errorf("could not fetch patient details: %v", err)
	}

	subject, body := sr.receiptText(&patient)

	var finalErr error
	if sr.meowClient != nil && patient.ContactNumber != "" {
		if err := sr.sendWA(ctx, &patient, body); err != nil {
			finalErr = fmt.Errorf("failed to send Whatsapp text to %s: %w", patient.ContactNumber, err)
		}
	}

	if sr.mailDialer != nil && patient.Email != "" {
		if err := sr.sendEmail(&patient, subject, body); err != nil {
			finalErr = fmt.Errorf("failed to send email to %s: %w", patient.Email, err)
		}
	}

	return finalErr
}

func (sr *senderRepository) sendWA(ctx context.Context, patient *domain.Patient, body string) error {
	// Local numbers start with 0; WhatsApp wants the country prefix.
	completeFormat := fmt.Sprintf("%s%s", "92", patient.ContactNumber[1:])
	jid := types.NewJID(completeFormat, types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &body,
	}

	_, err := sr.meowClient.SendMessage(ctx, jid, conversationMessage)
	return err
}

func (sr *senderRepository) sendEmail(patient *domain.Patient, subject, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", sr.emailSender)
	message.SetHeader("To", patient.Email)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	return sr.mailDialer.DialAndSend(message)
}

func (sr *senderRepository) receiptText(patient *domain.Patient) (string, string) {
	formattedDate := patient.CreatedAt.Format("02/01/2006")

	subject := fmt.Sprintf("Registration receipt for %s, token %d", patient.Name, patient.TokenNumber)

	body := fmt.Sprintf(`Dear %s,

Your registration on %s is complete. Your token number for today is %d.

Please wait for your token to be called. If you have any questions, contact us at %s.

Thank you.`, patient.Name, formattedDate, patient.TokenNumber, sr.hospitalPhone)

	return subject, body
}
