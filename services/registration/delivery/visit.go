package delivery

import (
	"errors"
	"hospital/config"
	"hospital/domain"
	"hospital/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type visitHandler struct {
	uc domain.VisitUseCase
}

func NewVisitHandler(app *fiber.App, useCase domain.VisitUseCase) {
	handler := &visitHandler{
		uc: useCase,
	}

	route := app.Group("/visit")
	route.Post("/add/:id", handler.AddVisit)
	route.Get("/list", handler.ListVisits)
}

func NewVisitHandlerDeploy(app *fiber.App, useCase domain.VisitUseCase) {
	handler := &visitHandler{
		uc: useCase,
	}

	route := app.Group("/visit")
	route.Post("/add/:id", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin, domain.RoleFrontDesk), handler.AddVisit)
	route.Get("/list", middleware.AuthRequired(), handler.ListVisits)
}

func (vh *visitHandler) AddVisit(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "AddVisit")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid patient id",
			"message": "Invalid patient id",
		})
	}

	visit, err := vh.uc.AddVisitUC(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			config.PrintLogInfo(username, fiber.StatusNotFound, "AddVisit")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Patient not found",
			})
		}
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "AddVisit")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to record visit",
		})
	}

	config.PrintLogInfo(username, fiber.StatusCreated, "AddVisit")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Visit recorded successfully",
		"data":    visit,
	})
}

func (vh *visitHandler) ListVisits(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	visits, err := vh.uc.ListVisits(c.Context())
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "ListVisits")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to list visits",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "ListVisits")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Visits retrieved successfully",
		"data":    visits,
	})
}
