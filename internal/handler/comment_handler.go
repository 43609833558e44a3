package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	raw := c.Query("missing_person_id")
	if raw == "" {
		return middleware.BadRequest("missing_person_id is required")
	}
	caseID, err := uuid.Parse(raw)
	if err != nil {
		return middleware.BadRequest("Invalid missing_person_id")
	}

	comments, err := h.commentService.ListByCase(c.Context(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": comments})
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.MissingPersonID == uuid.Nil || input.Comment == "" {
		return middleware.BadRequest("missing_person_id and comment are required")
	}

	created, err := h.commentService.Create(c.Context(), middleware.GetUserID(c), input)
	if err != nil {
		return middleware.MapError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added successfully",
		"data":    created,
	})
}
