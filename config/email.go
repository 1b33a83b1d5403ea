package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

var goMailDialer *gomail.Dialer

// InitEmailer builds the SMTP dialer for registration receipts and checks the
// sender identity is configured.
func InitEmailer() (*gomail.Dialer, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("empty smtp host")
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid smtp port: %v", err)
	}

	if _, err := GetEmailSender(); err != nil {
		return nil, err
	}

	goMailDialer = gomail.NewDialer(host, port, os.Getenv("EMAIL_SENDER"), os.Getenv("EMAIL_SENDER_PASSWORD"))
	return goMailDialer, nil
}

func GetEmailSender() (string, error) {
	emailSender := os.Getenv("EMAIL_SENDER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}
