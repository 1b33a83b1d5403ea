package delivery

import (
	"hospital/config"
	"hospital/domain"
	"hospital/middleware"

	"github.com/gofiber/fiber/v2"
)

type reportHandler struct {
	uc domain.ReportUseCase
}

func NewReportHandler(app *fiber.App, useCase domain.ReportUseCase) {
	handler := &reportHandler{
		uc: useCase,
	}

	app.Get("/visit/search", handler.SearchVisits)
	app.Get("/doctor/list", handler.ListDoctors)
	app.Get("/dashboard/summary", handler.DashboardSummary)
}

func NewReportHandlerDeploy(app *fiber.App, useCase domain.ReportUseCase) {
	handler := &reportHandler{
		uc: useCase,
	}

	app.Get("/visit/search", middleware.AuthRequired(), handler.SearchVisits)
	app.Get("/doctor/list", middleware.AuthRequired(), handler.ListDoctors)
	app.Get("/dashboard/summary", middleware.AuthRequired(), handler.DashboardSummary)
}

func (rh *reportHandler) SearchVisits(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	rows, err := rh.uc.SearchVisits(c.Context(), c.Query("cnic"))
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "SearchVisits")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to search visits",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "SearchVisits")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Visit search results retrieved successfully",
		"data":    rows,
	})
}

func (rh *reportHandler) ListDoctors(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	doctors, err := rh.uc.ListDoctors(c.Context())
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "ListDoctors")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to list doctors",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "ListDoctors")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Doctors retrieved successfully",
		"data":    doctors,
	})
}

func (rh *reportHandler) DashboardSummary(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	summary, err := rh.uc.DashboardSummary(c.Context())
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "DashboardSummary")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to build dashboard summary",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "DashboardSummary")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard summary retrieved successfully",
		"data":    summary,
	})
}
