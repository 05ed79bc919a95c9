package types

import (
	"time"

	appErr "github.com/warrantyit/server/pkg/errors"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Brand          string   `json:"brand" validate:"required,min=2,max=50"`
	Type           string   `json:"type" validate:"required,min=2,max=50"`
	WarrantyPeriod int      `json:"warrantyPeriod" validate:"required,gte=1,lte=120"`
	StartDate      string   `json:"startDate" validate:"required"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	SerialNumber   *string  `json:"serialNumber" validate:"omitempty,min=3,max=50"`
	PurchasePrice  *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Brand          *string  `json:"brand" validate:"omitempty,min=2,max=50"`
	Type           *string  `json:"type" validate:"omitempty,min=2,max=50"`
	WarrantyPeriod *int     `json:"warrantyPeriod" validate:"omitempty,gte=1,lte=120"`
	StartDate      *string  `json:"startDate"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	SerialNumber   *string  `json:"serialNumber" validate:"omitempty,min=3,max=50"`
	PurchasePrice  *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	Status         *string  `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED CLAIMED CANCELLED"`
}

// dateLayouts are the accepted start-date formats.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseStartDate parses and boundary-checks a warranty start date: it must
// not be in the future and not more than one year in the past.
func ParseStartDate(s string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		parsed, err = time.Parse(layout, s)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, appErr.New(appErr.CodeInvalid, "Start date must be a valid date")
	}

	now := time.Now()
	if parsed.After(now) {
		return time.Time{}, appErr.New(appErr.CodeInvalid, "Start date cannot be in the future")
	}
	y, m, d := now.Date()
	oneYearAgo := time.Date(y-1, m, d, 0, 0, 0, 0, time.UTC)
	if parsed.Before(oneYearAgo) {
		return time.Time{}, appErr.New(appErr.CodeInvalid, "Start date cannot be more than one year ago")
	}
	return parsed, nil
}

// ValidatePassword enforces the registration password policy: at least one
// uppercase letter, one lowercase letter, and one digit. Length is already
// covered by the min=8 tag.
func ValidatePassword(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return appErr.New(appErr.CodeInvalid, "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}
