package delivery

import (
	"hospital/config"
	"hospital/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		uc: useCase,
	}

	route := app.Group("/login")
	route.Post("/user", handler.Login)
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid credentials payload",
		})
	}

	resp, err := ah.uc.Login(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(&req.Username, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "invalid username or password",
			"message": "Login failed",
		})
	}

	config.PrintLogInfo(&req.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    resp,
	})
}
