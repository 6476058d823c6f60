package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/api/dto"
	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/service"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// KnowledgeHandler exposes the knowledge base CRUD and FAQ endpoints.
type KnowledgeHandler struct {
	knowledge *service.KnowledgeService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(knowledge *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledge}
}

// List handles GET /api/knowledge.
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	items, err := h.knowledge.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/knowledge/:id.
func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid item id", nil)
	}

	item, err := h.knowledge.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Create handles POST /api/knowledge.
func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var req dto.KnowledgeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.knowledge.Create(c.UserContext(), &domain.KnowledgeItem{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// Update handles PUT /api/knowledge/:id.
func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid item id", nil)
	}

	var req dto.KnowledgeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.knowledge.Update(c.UserContext(), &domain.KnowledgeItem{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Delete handles DELETE /api/knowledge/:id.
func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid item id", nil)
	}

	if err := h.knowledge.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "knowledge item deleted"})
}

// FAQ handles GET /api/faq.
func (h *KnowledgeHandler) FAQ(c *fiber.Ctx) error {
	entries, err := h.knowledge.FAQ(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// SuggestCategories handles POST /api/knowledge/suggest-categories.
func (h *KnowledgeHandler) SuggestCategories(c *fiber.Ctx) error {
	var req dto.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	categories, err := h.knowledge.SuggestCategories(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// SuggestTags handles POST /api/knowledge/suggest-tags.
func (h *KnowledgeHandler) SuggestTags(c *fiber.Ctx) error {
	var req dto.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	tags, err := h.knowledge.SuggestTags(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tags": tags})
}
