package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/interfaces/http/middleware"
	"parts-market.backend/internal/interfaces/http/response"
	"parts-market.backend/internal/usecases"
)

// InquiryHandler handles buyer inquiry endpoints
type InquiryHandler struct {
	inquiryUsecase *usecases.InquiryUsecase
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase *usecases.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase}
}

// CreateInquiry creates an inquiry; the buyer defaults to the request actor
// when omitted, the seller is always derived from the part.
// POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input entities.CreateBuyerInquiryInput
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

	inquiry, err := h.inquiryUsecase.CreateInquiry(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inquiry)
}

// ListBuyerInquiries lists inquiries created by a buyer
// GET /api/v1/inquiries/buyer/:userId
func (h *InquiryHandler) ListBuyerInquiries(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	inquiries, err := h.inquiryUsecase.ListBuyerInquiries(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, inquiries)
}

// ListSellerInquiries lists inquiries addressed to a seller
// GET /api/v1/inquiries/seller/:userId
func (h *InquiryHandler) ListSellerInquiries(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	inquiries, err := h.inquiryUsecase.ListSellerInquiries(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, inquiries)
}

// UpdateInquiryStatus moves an inquiry along its workflow
// PATCH /api/v1/inquiries/:id/status
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateInquiryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	inquiry, err := h.inquiryUsecase.UpdateInquiryStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, inquiry)
}
