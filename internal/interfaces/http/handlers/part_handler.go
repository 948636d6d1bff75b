package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"parts-market.backend/internal/domain/entities"
	"parts-market.backend/internal/interfaces/http/response"
	"parts-market.backend/internal/usecases"
)

// PartHandler handles part listing endpoints
type PartHandler struct {
	partUsecase *usecases.PartUsecase
}

// NewPartHandler creates a new part handler
func NewPartHandler(partUsecase *usecases.PartUsecase) *PartHandler {
	return &PartHandler{partUsecase: partUsecase}
}

// CreatePart lists a part for sale
// POST /api/v1/parts
func (h *PartHandler) CreatePart(c *gin.Context) {
	var input entities.CreateAutoPartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	part, err := h.partUsecase.CreatePart(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, part)
}

// ListParts lists all active parts
// GET /api/v1/parts
func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.partUsecase.ListActiveParts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, parts)
}

// SearchParts searches active parts with a conjunctive filter
// GET /api/v1/parts/search
func (h *PartHandler) SearchParts(c *gin.Context) {
	var input entities.SearchPartsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	parts, err := h.partUsecase.SearchParts(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, parts)
}

// UpdatePart applies a sparse update to a part
// PATCH /api/v1/parts/:id
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateAutoPartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	part, err := h.partUsecase.UpdatePart(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, part)
}

// CreatePartImage attaches an image to a part
// POST /api/v1/parts/:id/images
func (h *PartHandler) CreatePartImage(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreatePartImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	image, err := h.partUsecase.CreatePartImage(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, image)
}

// ListPartImages lists the images attached to a part
// GET /api/v1/parts/:id/images
func (h *PartHandler) ListPartImages(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	images, err := h.partUsecase.ListPartImages(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, images)
}
