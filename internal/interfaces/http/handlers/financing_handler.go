package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/interfaces/http/middleware"
	"parts-market.backend/internal/interfaces/http/response"
	"parts-market.backend/internal/usecases"
)

// FinancingHandler handles loan product and application endpoints
type FinancingHandler struct {
	financingUsecase *usecases.FinancingUsecase
}

// NewFinancingHandler creates a new financing handler
func NewFinancingHandler(financingUsecase *usecases.FinancingUsecase) *FinancingHandler {
	return &FinancingHandler{financingUsecase: financingUsecase}
}

// CreateOption creates a loan product
// POST /api/v1/financing-options
func (h *FinancingHandler) CreateOption(c *gin.Context) {
	var input entities.CreateFinancingOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	option, err := h.financingUsecase.CreateOption(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, option)
}

// ListOptions lists all active loan products
// GET /api/v1/financing-options
func (h *FinancingHandler) ListOptions(c *gin.Context) {
	options, err := h.financingUsecase.ListActiveOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, options)
}

// EstimatePayment returns the display-only monthly payment quote
// GET /api/v1/financing-options/:id/estimate?amount=
func (h *FinancingHandler) EstimatePayment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid amount parameter"))
		return
	}

	estimate, err := h.financingUsecase.EstimatePayment(c.Request.Context(), id, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, estimate)
}

// CreateApplication submits a financing application; the buyer defaults to
// the request actor when omitted, the provider is derived from the option.
// POST /api/v1/financing-applications
func (h *FinancingHandler) CreateApplication(c *gin.Context) {
	var input entities.CreateFinancingApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	if input.BuyerID == 0 {
		input.BuyerID = middleware.GetActorID(c)
	}
	if input.BuyerID == 0 {
		response.Error(c, domainerrors.BadRequest("buyerId is required"))
		return
	}

	app, err := h.financingUsecase.CreateApplication(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, app)
}

// ListApplications lists applications for a user by role column
// GET /api/v1/financing-applications?userId=&role=
func (h *FinancingHandler) ListApplications(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, domainerrors.BadRequest("invalid userId parameter"))
		return
	}
	role := entities.UserType(c.Query("role"))

	apps, err := h.financingUsecase.ListApplications(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// UpdateApplicationStatus moves an application along its workflow
// PATCH /api/v1/financing-applications/:id/status
func (h *FinancingHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	app, err := h.financingUsecase.UpdateApplicationStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}
