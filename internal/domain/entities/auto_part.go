package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// PartCategory represents the closed set of auto part categories
type PartCategory string

const (
	PartCategoryEngine       PartCategory = "engine"
	PartCategoryTransmission PartCategory = "transmission"
	PartCategoryBrakes       PartCategory = "brakes"
	PartCategorySuspension   PartCategory = "suspension"
	PartCategoryElectrical   PartCategory = "electrical"
	PartCategoryExhaust      PartCategory = "exhaust"
	PartCategoryInterior     PartCategory = "interior"
	PartCategoryExterior     PartCategory = "exterior"
	PartCategoryTiresWheels  PartCategory = "tires_wheels"
	PartCategoryOther        PartCategory = "other"
)

// PartCondition represents the condition of a listed part
type PartCondition string

const (
	PartConditionNew           PartCondition = "new"
	PartConditionUsedExcellent PartCondition = "used_excellent"
	PartConditionUsedGood      PartCondition = "used_good"
	PartConditionUsedFair      PartCondition = "used_fair"
	PartConditionRefurbished   PartCondition = "refurbished"
)

// AutoPart represents a part listed for sale by a seller
type AutoPart struct {
	ID          int64         `json:"id"`
	SellerID    int64         `json:"sellerId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    PartCategory  `json:"category"`
	Condition   PartCondition `json:"condition"`
	Price       float64       `json:"price"`
	Make        string        `json:"make"`
	Model       string        `json:"model"`
	Year        int           `json:"year"`
	PartNumber  null.String   `json:"partNumber,omitempty"`
	IsActive    bool          `json:"isActive"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PartImage represents an image attached to a part listing
type PartImage struct {
	ID        int64     `json:"id"`
	PartID    int64     `json:"partId"`
	ImageURL  string    `json:"imageUrl"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAutoPartInput represents input for listing a part
type CreateAutoPartInput struct {
	SellerID    int64         `json:"sellerId" binding:"required,gt=0"`
	Title       string        `json:"title" binding:"required,min=1"`
	Description string        `json:"description" binding:"required,min=1"`
	Category    PartCategory  `json:"category" binding:"required,oneof=engine transmission brakes suspension electrical exhaust interior exterior tires_wheels other"`
	Condition   PartCondition `json:"condition" binding:"required,oneof=new used_excellent used_good used_fair refurbished"`
	Price       float64       `json:"price" binding:"required,gt=0"`
	Make        string        `json:"make" binding:"required,min=1"`
	Model       string        `json:"model" binding:"required,min=1"`
	Year        int           `json:"year" binding:"required,gte=1900"`
	PartNumber  *string       `json:"partNumber,omitempty"`
}

// UpdateAutoPartInput represents a sparse update; nil fields keep stored values
type UpdateAutoPartInput struct {
	Title       *string        `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string        `json:"description,omitempty" binding:"omitempty,min=1"`
	Category    *PartCategory  `json:"category,omitempty" binding:"omitempty,oneof=engine transmission brakes suspension electrical exhaust interior exterior tires_wheels other"`
	Condition   *PartCondition `json:"condition,omitempty" binding:"omitempty,oneof=new used_excellent used_good used_fair refurbished"`
	Price       *float64       `json:"price,omitempty" binding:"omitempty,gt=0"`
	PartNumber  *string        `json:"partNumber,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty"`
}

// SearchPartsInput represents the conjunctive search filter over active parts
type SearchPartsInput struct {
	Query     string         `form:"query"`
	Category  *PartCategory  `form:"category" binding:"omitempty,oneof=engine transmission brakes suspension electrical exhaust interior exterior tires_wheels other"`
	Condition *PartCondition `form:"condition" binding:"omitempty,oneof=new used_excellent used_good used_fair refurbished"`
	Make      string         `form:"make"`
	Model     string         `form:"model"`
	Year      *int           `form:"year"`
	MinPrice  *float64       `form:"minPrice"`
	MaxPrice  *float64       `form:"maxPrice"`
	Limit     int            `form:"limit" binding:"omitempty,gt=0"`
	Offset    int            `form:"offset" binding:"omitempty,gte=0"`
}

// CreatePartImageInput represents input for attaching an image to a part
type CreatePartImageInput struct {
	ImageURL  string `json:"imageUrl" binding:"required,url"`
	IsPrimary bool   `json:"isPrimary"`
}
