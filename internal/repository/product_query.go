package repository

import (
	"strings"
	"time"

	"github.com/warrantyit/server/internal/models"
)

// ListParams are the normalized listing inputs for a user's products.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Status    models.ProductStatus
	Search    string
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize applies defaults and clamps out-of-range values.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if _, ok := sortColumns[p.SortBy]; !ok {
		p.SortBy = "createdAt"
	}
	if s := strings.ToLower(p.SortOrder); s == "asc" || s == "desc" {
		p.SortOrder = s
	} else {
		p.SortOrder = "desc"
	}
}

// sortColumns whitelists API sort fields against column names. Anything not
// in this map falls back to createdAt.
var sortColumns = map[string]string{
	"name":           "name",
	"brand":          "brand",
	"type":           "type",
	"warrantyPeriod": "warranty_period",
	"startDate":      "start_date",
	"endDate":        "end_date",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// orderClause renders the ORDER BY expression from whitelisted inputs only.
func orderClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// statusCondition builds the WHERE fragment for a status filter. ACTIVE and
// EXPIRED filter on the date-derived effective status so stale stored values
// never leak through; CLAIMED and CANCELLED match the stored column, which is
// authoritative for those two. Returns ok=false for an empty filter.
func statusCondition(status models.ProductStatus, now time.Time) (cond string, args []any, ok bool) {
	switch status {
	case models.StatusActive:
		return "status NOT IN ? AND end_date >= ?", []any{[]models.ProductStatus{models.StatusClaimed, models.StatusCancelled}, now}, true
	case models.StatusExpired:
		return "status NOT IN ? AND end_date < ?", []any{[]models.ProductStatus{models.StatusClaimed, models.StatusCancelled}, now}, true
	case models.StatusClaimed, models.StatusCancelled:
		return "status = ?", []any{status}, true
	}
	return "", nil, false
}

// searchCondition builds the case-insensitive substring match across name,
// brand, type, and serial number. Returns ok=false for an empty search.
func searchCondition(search string) (cond string, args []any, ok bool) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil, false
	}
	pattern := "%" + search + "%"
	cond = "(name ILIKE ? OR brand ILIKE ? OR type ILIKE ? OR serial_number ILIKE ?)"
	return cond, []any{pattern, pattern, pattern, pattern}, true
}
