package config

import (
	"context"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	qrcode "github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
)

var meowWhatsapp *whatsmeow.Client

// WhatsappEnabled gates the notifier. Registration works without it; the
// receipt message is simply skipped.
func WhatsappEnabled() bool {
	return os.Getenv("WHATSAPP_ENABLED") == "true"
}

func GetHospitalPhone() (string, error) {
	phone := os.Getenv("HOSPITAL_PHONE")
	if phone == "" {
		return "", fmt.Errorf("hospital phone invalid, value : %s", phone)
	}
	return phone, nil
}

// InitMeow connects the WhatsApp client, printing a login QR code on first
// run. The session store lives in the same postgres database.
func InitMeow() (*whatsmeow.Client, error) {
	container, err := sqlstore.New("postgres", GetDatabaseURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open whatsapp session store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to load whatsapp device: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, nil)
	meowWhatsapp = client

	if meowWhatsapp.Store.ID == nil {
		qrChan, _ := meowWhatsapp.GetQRChannel(context.Background())
		if err := meowWhatsapp.Connect(); err != nil {
			return nil, err
		}
		// No stored session: an operator has to scan the QR code once.
		for evt := range qrChan {
			if evt.Event == "code" {
				fmt.Println("==============   QR CODE   ==============")
				fmt.Println(evt.Code)

				if err := generateQRCode(evt.Code, "qrcode.png"); err != nil {
					return nil, err
				}
				fmt.Println("QR code also written to qrcode.png")
			} else {
				fmt.Println("Login event:", evt.Event)
			}
		}
	} else {
		if err := meowWhatsapp.Connect(); err != nil {
			return nil, err
		}
	}

	return meowWhatsapp, nil
}

func generateQRCode(data, filePath string) error {
	if err := qrcode.WriteFile(data, qrcode.Medium, 256, filePath); err != nil {
		return fmt.Errorf("failed to generate QR code: %v", err)
	}
	return nil
}
