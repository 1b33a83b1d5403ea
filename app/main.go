package main

import (
	"context"
	"hospital/config"
	"hospital/domain"
	"hospital/services/registration/delivery"
	"hospital/services/registration/repository"
	"hospital/services/registration/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mau.fi/whatsmeow"
	"gopkg.in/gomail.v2"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}
	defer pool.Close()

	var meow *whatsmeow.Client
	if config.WhatsappEnabled() {
		meow, err = config.InitMeow()
		if err != nil {
			log.Fatalf("Failed to connect Whatsapp client: %v", err)
			return
		}
	} else {
		log.Warn("Whatsapp notifications disabled")
	}

	var dialer *gomail.Dialer
	emailSender := ""
	dialer, err = config.InitEmailer()
	if err != nil {
		log.Warnf("Email notifications disabled: %v", err)
		dialer = nil
	} else {
		emailSender, _ = config.GetEmailSender()
	}

	hospitalPhone, err := config.GetHospitalPhone()
	if err != nil {
		log.Warnf("Hospital phone not configured: %v", err)
	}

	timeout := 10 * time.Second

	// Repositories
	counterRepo := repository.NewCounterRepository(db)
	patientRepo := repository.NewPatientRepository(db, counterRepo)
	visitRepo := repository.NewVisitRepository(db)
	authRepo := repository.NewAuthRepository(db)
	reportRepo := repository.NewReportRepository(pool)

	// Use cases
	patientUC := usecase.NewPatientUseCase(patientRepo, timeout)
	visitUC := usecase.NewVisitUseCase(visitRepo, timeout)
	authUC := usecase.NewAuthUseCase(authRepo, timeout)
	reportUC := usecase.NewReportUseCase(reportRepo, timeout)

	var senderUC domain.SenderUseCase
	if meow != nil || dialer != nil {
		senderRepo := repository.NewSenderRepository(db, meow, dialer, emailSender, hospitalPhone)
		senderUC = usecase.NewSenderUseCase(senderRepo, 30*time.Second)
	}

	// Delivery
	delivery.NewAuthHandler(app, authUC)
	if os.Getenv("APP_ENV") == "production" {
		delivery.NewPatientHandlerDeploy(app, patientUC, senderUC)
		delivery.NewVisitHandlerDeploy(app, visitUC)
		delivery.NewReportHandlerDeploy(app, reportUC)
	} else {
		delivery.NewPatientHandler(app, patientUC, senderUC)
		delivery.NewVisitHandler(app, visitUC)
		delivery.NewReportHandler(app, reportUC)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
