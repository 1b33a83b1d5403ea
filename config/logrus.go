package config

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 series
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

// PrintLogInfo writes the per-request access line the handlers emit after
// each call. A nil username means an unauthenticated route.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode >= fiber.StatusOK && statusCode < fiber.StatusMultipleChoices:
		logColor = green
	case statusCode >= fiber.StatusMultipleChoices && statusCode < fiber.StatusBadRequest:
		logColor = yellow
	case statusCode >= fiber.StatusBadRequest:
		logColor = red
	default:
		logColor = reset
	}

	user := "Unknown"
	if username != nil {
		user = *username
	}

	logMsg := fmt.Sprintf("\nUser: %s, (%s) => Status: %s[%d] - %s%s\n\n\n", user, functionName, logColor, statusCode, http.StatusText(statusCode), reset)
	log.Info(logMsg)
}
