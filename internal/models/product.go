package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStatus is the persisted lifecycle status of a product. Only CLAIMED
// and CANCELLED are authoritative as stored; ACTIVE/EXPIRED are re-derived
// from the end date on every read.
type ProductStatus string

const (
	StatusActive    ProductStatus = "ACTIVE"
	StatusExpired   ProductStatus = "EXPIRED"
	StatusClaimed   ProductStatus = "CLAIMED"
	StatusCancelled ProductStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s ProductStatus) bool {
	switch s {
	case StatusActive, StatusExpired, StatusClaimed, StatusCancelled:
		return true
	}
	return false
}

// ExpiringSoonWindow is how far ahead of now a product's end date may fall
// and still be reported as expiring soon.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Product is a purchased item with a warranty, owned by exactly one user.
type Product struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId" validate:"required"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=2,max=100"`
	Brand          string         `gorm:"type:varchar(50);not null" json:"brand" validate:"required,min=2,max=50"`
	Type           string         `gorm:"type:varchar(50);index;not null" json:"type" validate:"required,min=2,max=50"`
	WarrantyPeriod int            `gorm:"not null" json:"warrantyPeriod" validate:"required,gte=1,lte=120"`
	StartDate      time.Time      `gorm:"index;not null" json:"startDate" validate:"required"`
	EndDate        time.Time      `gorm:"index;not null" json:"endDate"`
	Description    *string        `gorm:"type:varchar(500)" json:"description,omitempty"`
	SerialNumber   *string        `gorm:"type:varchar(50)" json:"serialNumber,omitempty"`
	PurchasePrice  *float64       `json:"purchasePrice,omitempty"`
	Status         ProductStatus  `gorm:"type:varchar(16);index;not null;default:ACTIVE" json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
}

// ComputeEndDate advances start by months calendar months. Day overflow
// normalizes forward (Jan 31 + 1 month = Mar 2/3), matching time.AddDate.
func ComputeEndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// EffectiveStatus resolves the status presented to callers at time now.
// Stored CLAIMED/CANCELLED always win; otherwise a product whose end date is
// strictly before now is EXPIRED regardless of what is stored, and ACTIVE
// otherwise. The stored row is never updated from this projection.
func (p *Product) EffectiveStatus(now time.Time) ProductStatus {
	switch p.Status {
	case StatusClaimed:
		return StatusClaimed
	case StatusCancelled:
		return StatusCancelled
	}
	if p.EndDate.Before(now) {
		return StatusExpired
	}
	return StatusActive
}

// ExpiringSoon reports whether the product is effectively ACTIVE with an end
// date inside the next 30 days of now, boundary inclusive.
func (p *Product) ExpiringSoon(now time.Time) bool {
	if p.EffectiveStatus(now) != StatusActive {
		return false
	}
	return !p.EndDate.After(now.Add(ExpiringSoonWindow))
}

// Resolve applies the effective status in place on a loaded product. It is a
// view-time projection only and must never be followed by a save.
func (p *Product) Resolve(now time.Time) {
	p.Status = p.EffectiveStatus(now)
}
