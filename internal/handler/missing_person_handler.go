package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/service/media"
	"missing-person-tracker/internal/service/missingperson"
)

type MissingPersonHandler struct {
	service missingperson.Service
}

func NewMissingPersonHandler(service missingperson.Service) *MissingPersonHandler {
	return &MissingPersonHandler{service: service}
}

func (h *MissingPersonHandler) List(c *fiber.Ctx) error {
	filter := domain.CaseFilter{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", domain.DefaultCaseLimit),
		Offset: c.QueryInt("offset", 0),
	}

	if status := c.Query("status"); status != "" {
		s := domain.CaseStatus(status)
		if !s.IsValid() {
			return middleware.BadRequest("Invalid status")
		}
		filter.Status = &s
	}
	if priority := c.Query("priority"); priority != "" {
		p := domain.Priority(priority)
		if !p.IsValid() {
			return middleware.BadRequest("Invalid priority")
		}
		filter.Priority = &p
	}

	list, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *MissingPersonHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateMissingPersonInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	mp, err := h.service.Create(c.Context(), middleware.GetUserID(c), input)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Missing person report created successfully",
		"data":    mp,
	})
}

func (h *MissingPersonHandler) Get(c *fiber.Ctx) error {
	id, err := caseID(c)
	if err != nil {
		return err
	}

	mp, err := h.service.Get(c.Context(), id)
	if err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{"data": mp})
}

func (h *MissingPersonHandler) Update(c *fiber.Ctx) error {
	id, err := caseID(c)
	if err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	mp, err := h.service.Update(c.Context(), middleware.GetActor(c), id, fields)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{
		"message": "Missing person updated successfully",
		"data":    mp,
	})
}

func (h *MissingPersonHandler) Delete(c *fiber.Ctx) error {
	if !middleware.IsAdmin(c) {
		return middleware.Forbidden("Only admins can delete reports")
	}

	id, err := caseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), middleware.GetActor(c), id); err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "Missing person deleted successfully"})
}

func (h *MissingPersonHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := caseID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	mp, err := h.service.UpdateStatus(c.Context(), middleware.GetActor(c), id, input)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
		"data":    mp,
	})
}

func (h *MissingPersonHandler) StatusHistory(c *fiber.Ctx) error {
	id, err := caseID(c)
	if err != nil {
		return err
	}

	updates, err := h.service.ListStatusUpdates(c.Context(), id)
	if err != nil {
		return middleware.MapError(err)
	}
	return c.JSON(fiber.Map{"data": updates})
}

func (h *MissingPersonHandler) MyReports(c *fiber.Ctx) error {
	cases, err := h.service.MyReports(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cases})
}

func (h *MissingPersonHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := caseID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return middleware.BadRequest("photo file is required")
	}
	if file.Size > media.MaxPhotoSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "photo exceeds 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mp, err := h.service.UploadPhoto(c.Context(), middleware.GetActor(c), id,
		file.Size, file.Header.Get(fiber.HeaderContentType), src)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.JSON(fiber.Map{
		"message": "Photo uploaded successfully",
		"data":    mp,
	})
}

func caseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NotFound("Missing person not found")
	}
	return id, nil
}
