package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/api/dto"
	"github.com/idms/employee-portal/internal/service"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// AssistantHandler exposes the scripted assistant endpoints.
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler constructs handler.
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Query handles POST /api/assistant/query.
func (h *AssistantHandler) Query(c *fiber.Ctx) error {
	var req dto.AssistantQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reply, err := h.assistant.Query(c.UserContext(), req.Query, req.Role, req.Department)
	if err != nil {
		return err
	}
	return c.JSON(reply)
}

// KnowledgeGaps handles POST /api/assistant/knowledge-gaps.
func (h *AssistantHandler) KnowledgeGaps(c *fiber.Ctx) error {
	var req dto.KnowledgeGapsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	suggestions, err := h.assistant.KnowledgeGaps(c.UserContext(), req.Queries)
	if err != nil {
		return err
	}
	return c.JSON(dto.KnowledgeGapsResponse{Suggestions: suggestions})
}
