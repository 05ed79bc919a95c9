package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	appErr "github.com/warrantyit/server/pkg/errors"
	"github.com/warrantyit/server/pkg/logger"
	"go.uber.org/zap"
)

type CreateProductInput struct {
	Name           string
	Brand          string
	Type           string
	WarrantyPeriod int
	StartDate      time.Time
	Description    *string
	SerialNumber   *string
	PurchasePrice  *float64
}

type UpdateProductInput struct {
	Name           *string
	Brand          *string
	Type           *string
	WarrantyPeriod *int
	StartDate      *time.Time
	Description    *string
	SerialNumber   *string
	PurchasePrice  *float64
	Status         *models.ProductStatus
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ProductPage is a listing result with effective statuses already applied.
type ProductPage struct {
	Items      []models.Product `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// ProductStats are per-user aggregate counts over effective statuses.
// Active+Expired+Claimed+Cancelled always equals Total.
type ProductStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	Claimed      int `json:"claimed"`
	Cancelled    int `json:"cancelled"`
	ExpiringSoon int `json:"expiringSoon"`
}

type ProductService interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*models.Product, error)
	Get(ctx context.Context, productID, userID uuid.UUID) (*models.Product, error)
	List(ctx context.Context, userID uuid.UUID, params repository.ListParams) (*ProductPage, error)
	Update(ctx context.Context, productID, userID uuid.UUID, input *UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, productID, userID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*ProductStats, error)
}

type productService struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo, now: time.Now}
}

var _ ProductService = (*productService)(nil)

func (s *productService) Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*models.Product, error) {
	if input.SerialNumber != nil {
		inUse, err := s.productRepo.SerialInUse(ctx, *input.SerialNumber, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, appErr.New(appErr.CodeConflict, "Product with this serial number already exists")
		}
	}

	p := &models.Product{
		UserID:         userID,
		Name:           input.Name,
		Brand:          input.Brand,
		Type:           input.Type,
		WarrantyPeriod: input.WarrantyPeriod,
		StartDate:      input.StartDate,
		EndDate:        models.ComputeEndDate(input.StartDate, input.WarrantyPeriod),
		Description:    input.Description,
		SerialNumber:   input.SerialNumber,
		PurchasePrice:  input.PurchasePrice,
		Status:         models.StatusActive,
	}

	if err := s.productRepo.Create(ctx, p); err != nil {
		// The unique serial index is the authoritative guard if the
		// pre-check raced another writer.
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Product with this serial number already exists")
		}
		return nil, err
	}

	logger.L().Info("product created", zap.String("product_id", p.ID.String()), zap.String("user_id", userID.String()))
	p.Resolve(s.now())
	return p, nil
}

func (s *productService) Get(ctx context.Context, productID, userID uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := s.productRepo.GetOwned(ctx, productID, userID, &p); err != nil {
		return nil, err
	}
	p.Resolve(s.now())
	return &p, nil
}

func (s *productService) List(ctx context.Context, userID uuid.UUID, params repository.ListParams) (*ProductPage, error) {
	params.Normalize()
	now := s.now()

	items, total, err := s.productRepo.List(ctx, userID, params, now)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Resolve(now)
	}

	return &ProductPage{
		Items:      items,
		Pagination: newPagination(params.Page, params.Limit, total),
	}, nil
}

func (s *productService) Update(ctx context.Context, productID, userID uuid.UUID, input *UpdateProductInput) (*models.Product, error) {
	var p models.Product
	if err := s.productRepo.GetOwned(ctx, productID, userID, &p); err != nil {
		return nil, err
	}

	if input.SerialNumber != nil && (p.SerialNumber == nil || *input.SerialNumber != *p.SerialNumber) {
		inUse, err := s.productRepo.SerialInUse(ctx, *input.SerialNumber, p.ID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, appErr.New(appErr.CodeConflict, "Product with this serial number already exists")
		}
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Brand != nil {
		p.Brand = *input.Brand
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.SerialNumber != nil {
		p.SerialNumber = input.SerialNumber
	}
	if input.PurchasePrice != nil {
		p.PurchasePrice = input.PurchasePrice
	}
	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return nil, appErr.New(appErr.CodeInvalid, "Status must be one of: ACTIVE, EXPIRED, CLAIMED, CANCELLED")
		}
		p.Status = *input.Status
	}

	// End date is derived state: recompute whenever either input moved.
	if input.StartDate != nil || input.WarrantyPeriod != nil {
		if input.StartDate != nil {
			p.StartDate = *input.StartDate
		}
		if input.WarrantyPeriod != nil {
			p.WarrantyPeriod = *input.WarrantyPeriod
		}
		p.EndDate = models.ComputeEndDate(p.StartDate, p.WarrantyPeriod)
	}

	if err := s.productRepo.Update(ctx, &p); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Product with this serial number already exists")
		}
		return nil, err
	}

	logger.L().Info("product updated", zap.String("product_id", productID.String()), zap.String("user_id", userID.String()))
	p.Resolve(s.now())
	return &p, nil
}

func (s *productService) Delete(ctx context.Context, productID, userID uuid.UUID) error {
	var p models.Product
	if err := s.productRepo.GetOwned(ctx, productID, userID, &p); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	logger.L().Info("product deleted", zap.String("product_id", productID.String()), zap.String("user_id", userID.String()))
	return nil
}

func (s *productService) Stats(ctx context.Context, userID uuid.UUID) (*ProductStats, error) {
	rows, err := s.productRepo.StatusRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &ProductStats{Total: len(rows)}
	for _, row := range rows {
		p := models.Product{Status: row.Status, EndDate: row.EndDate}
		switch p.EffectiveStatus(now) {
		case models.StatusClaimed:
			stats.Claimed++
		case models.StatusCancelled:
			stats.Cancelled++
		case models.StatusExpired:
			stats.Expired++
		default:
			stats.Active++
			if p.ExpiringSoon(now) {
				stats.ExpiringSoon++
			}
		}
	}
	return stats, nil
}

func newPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
