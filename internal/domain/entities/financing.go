package entities

import "time"

// ApplicationStatus represents the workflow state of a financing application
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// CanTransitionTo reports whether the application workflow allows moving to
// target. Only pending applications may move; approved, rejected and
// withdrawn are terminal.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if s != ApplicationStatusPending {
		return false
	}
	return target == ApplicationStatusApproved ||
		target == ApplicationStatusRejected ||
		target == ApplicationStatusWithdrawn
}

// FinancingOption represents a loan product offered by a financing provider
type FinancingOption struct {
	ID           int64     `json:"id"`
	ProviderID   int64     `json:"providerId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MinAmount    float64   `json:"minAmount"`
	MaxAmount    float64   `json:"maxAmount"`
	InterestRate float64   `json:"interestRate"`
	TermMonths   int       `json:"termMonths"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FinancingApplication ties one buyer, one part and one financing option. The
// provider is derived from the option at creation time, never supplied by the
// caller. ApplicationData is an opaque serialized payload round-tripped as-is.
type FinancingApplication struct {
	ID                int64             `json:"id"`
	BuyerID           int64             `json:"buyerId"`
	ProviderID        int64             `json:"providerId"`
	PartID            int64             `json:"partId"`
	FinancingOptionID int64             `json:"financingOptionId"`
	RequestedAmount   float64           `json:"requestedAmount"`
	Status            ApplicationStatus `json:"status"`
	ApplicationData   string            `json:"applicationData"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// CreateFinancingOptionInput represents input for creating a loan product
type CreateFinancingOptionInput struct {
	ProviderID   int64   `json:"providerId" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required,min=1"`
	Description  string  `json:"description" binding:"required,min=1"`
	MinAmount    float64 `json:"minAmount" binding:"required,gt=0"`
	MaxAmount    float64 `json:"maxAmount" binding:"required,gt=0"`
	InterestRate float64 `json:"interestRate" binding:"gte=0,lte=100"`
	TermMonths   int     `json:"termMonths" binding:"required,gt=0"`
}

// CreateFinancingApplicationInput represents input for applying for financing.
// BuyerID may be omitted when an actor identity is on the request.
type CreateFinancingApplicationInput struct {
	BuyerID           int64   `json:"buyerId" binding:"omitempty,gt=0"`
	PartID            int64   `json:"partId" binding:"required,gt=0"`
	FinancingOptionID int64   `json:"financingOptionId" binding:"required,gt=0"`
	RequestedAmount   float64 `json:"requestedAmount" binding:"required,gt=0"`
	ApplicationData   string  `json:"applicationData" binding:"required"`
}

// UpdateApplicationStatusInput represents a status transition request
type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status" binding:"required,oneof=pending approved rejected withdrawn"`
}

// PaymentEstimate is the display-only monthly payment quote for an option
type PaymentEstimate struct {
	FinancingOptionID int64   `json:"financingOptionId"`
	Principal         float64 `json:"principal"`
	InterestRate      float64 `json:"interestRate"`
	TermMonths        int     `json:"termMonths"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
}
