package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/pkg/validation"
	"missing-person-tracker/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validation.Struct(&input); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) && verr.Missing() {
			return middleware.BadRequest("Full name, email and password are required")
		}
		return middleware.MapError(err)
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return middleware.BadRequest("Email and password are required")
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUserByID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{"user": user})
}
