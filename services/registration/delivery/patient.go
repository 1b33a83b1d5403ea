package delivery

import (
	"context"
	"errors"
	"hospital/config"
	"hospital/domain"
	"hospital/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type patientHandler struct {
	uc     domain.PatientUseCase
	sender domain.SenderUseCase
}

func NewPatientHandler(app *fiber.App, useCase domain.PatientUseCase, sender domain.SenderUseCase) {
	handler := &patientHandler{
		uc:     useCase,
		sender: sender,
	}

	route := app.Group("/patient")
	route.Post("/register", handler.RegisterPatient)
	route.Get("/search", handler.SearchPatient)
	route.Get("/:id", handler.GetPatientByID)
	route.Put("/modify/:id", handler.UpdatePatient)
}

func NewPatientHandlerDeploy(app *fiber.App, useCase domain.PatientUseCase, sender domain.SenderUseCase) {
	handler := &patientHandler{
		uc:     useCase,
		sender: sender,
	}

	route := app.Group("/patient")
	route.Post("/register", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin, domain.RoleFrontDesk), handler.RegisterPatient)
	route.Get("/search", middleware.AuthRequired(), handler.SearchPatient)
	route.Get("/:id", middleware.AuthRequired(), handler.GetPatientByID)
	route.Put("/modify/:id", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin, domain.RoleFrontDesk), handler.UpdatePatient)
}

// usernameFromCtx feeds the access log; nil on unauthenticated routes.
func usernameFromCtx(c *fiber.Ctx) *string {
	claims, ok := c.Locals("user").(*middleware.Claims)
	if !ok {
		return nil
	}
	return &claims.Username
}

func (ph *patientHandler) RegisterPatient(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	var payload domain.RegistrationPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "RegisterPatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if fieldErrors := domain.ValidateRegistration(&payload); fieldErrors != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "RegisterPatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fieldErrors,
			"message": "Invalid registration payload",
		})
	}

	withVisit := c.QueryBool("visit")

	patient, err := ph.uc.RegisterPatientUC(c.Context(), &payload, withVisit)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCNIC) {
			config.PrintLogInfo(username, fiber.StatusConflict, "RegisterPatient")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   fiber.Map{domain.WholeObjectKey: []string{err.Error()}},
				"message": "Patient already registered",
			})
		}
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "RegisterPatient")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to register patient",
		})
	}

	if ph.sender != nil {
		// The request context is recycled once the handler returns; the
		// receipt rides on its own context.
		go func(id int) {
			if err := ph.sender.SendRegistrationReceipt(context.Background(), id); err != nil {
				config.GetLogrusInstance().Warnf("receipt for patient %d not delivered: %v", id, err)
			}
		}(patient.PatientID)
	}

	config.PrintLogInfo(username, fiber.StatusCreated, "RegisterPatient")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Patient registered successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) GetPatientByID(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "GetPatientByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid patient id",
			"message": "Invalid patient id",
		})
	}

	detail, err := ph.uc.GetPatientByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			config.PrintLogInfo(username, fiber.StatusNotFound, "GetPatientByID")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Patient not found",
			})
		}
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "GetPatientByID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to fetch patient",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "GetPatientByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patient retrieved successfully",
		"data":    detail,
	})
}

func (ph *patientHandler) UpdatePatient(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "UpdatePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid patient id",
			"message": "Invalid patient id",
		})
	}

	var payload domain.RegistrationPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "UpdatePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if fieldErrors := domain.ValidateRegistration(&payload); fieldErrors != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "UpdatePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fieldErrors,
			"message": "Invalid registration payload",
		})
	}

	patient, err := ph.uc.UpdatePatient(c.Context(), id, &payload)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			config.PrintLogInfo(username, fiber.StatusNotFound, "UpdatePatient")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Patient not found",
			})
		}
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "UpdatePatient")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update patient",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "UpdatePatient")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patient updated successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) SearchPatient(c *fiber.Ctx) error {
	username := usernameFromCtx(c)

	patients, err := ph.uc.SearchPatientByCNIC(c.Context(), c.Query("cnic"))
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "SearchPatient")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to search patients",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "SearchPatient")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}
