package entities

import "time"

// InquiryStatus represents the workflow state of a buyer inquiry
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// CanTransitionTo reports whether the inquiry workflow allows moving to target.
// Allowed: pending→responded, pending→closed, responded→closed.
func (s InquiryStatus) CanTransitionTo(target InquiryStatus) bool {
	switch s {
	case InquiryStatusPending:
		return target == InquiryStatusResponded || target == InquiryStatusClosed
	case InquiryStatusResponded:
		return target == InquiryStatusClosed
	default:
		return false
	}
}

// BuyerInquiry ties one buyer, one seller and one part. The seller is derived
// from the part at creation time and never supplied by the caller.
type BuyerInquiry struct {
	ID        int64         `json:"id"`
	BuyerID   int64         `json:"buyerId"`
	SellerID  int64         `json:"sellerId"`
	PartID    int64         `json:"partId"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateBuyerInquiryInput represents input for creating an inquiry.
// BuyerID may be omitted when an actor identity is on the request.
type CreateBuyerInquiryInput struct {
	BuyerID int64  `json:"buyerId" binding:"omitempty,gt=0"`
	PartID  int64  `json:"partId" binding:"required,gt=0"`
	Message string `json:"message" binding:"required,min=1"`
}

// UpdateInquiryStatusInput represents a status transition request
type UpdateInquiryStatusInput struct {
	Status InquiryStatus `json:"status" binding:"required,oneof=pending responded closed"`
}
