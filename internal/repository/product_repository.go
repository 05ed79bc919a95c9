package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/warrantyit/server/internal/models"
	appErr "github.com/warrantyit/server/pkg/errors"
	"gorm.io/gorm"
)

// StatusRow is the minimal projection the statistics path needs: enough to
// run the effective-status resolution without loading whole rows.
type StatusRow struct {
	Status  models.ProductStatus
	EndDate time.Time
}

type ProductRepository interface {
	BaseRepository[models.Product]
	// GetOwned loads a product only if it belongs to userID. A product owned
	// by someone else is reported exactly like a missing one.
	GetOwned(ctx context.Context, productID, userID uuid.UUID, dest *models.Product) error
	// List returns one page of the user's products plus the total matching
	// count before pagination. Params must be normalized by the caller.
	List(ctx context.Context, userID uuid.UUID, params ListParams, now time.Time) ([]models.Product, int64, error)
	// StatusRows returns the status/end-date projection of every product the
	// user owns, for aggregate counting.
	StatusRows(ctx context.Context, userID uuid.UUID) ([]StatusRow, error)
	// SerialInUse reports whether another product (excluding excludeID, which
	// may be uuid.Nil) already carries this serial number.
	SerialInUse(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error)
}

type productRepository struct {
	BaseRepository[models.Product]
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{BaseRepository: NewBaseRepository[models.Product](db), db: db}
}

func (r *productRepository) GetOwned(ctx context.Context, productID, userID uuid.UUID, dest *models.Product) error {
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", productID, userID).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "Product not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get product failed")
	}
	return nil
}

func (r *productRepository) List(ctx context.Context, userID uuid.UUID, params ListParams, now time.Time) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("user_id = ?", userID)

	if cond, args, ok := statusCondition(params.Status, now); ok {
		q = q.Where(cond, args...)
	}
	if cond, args, ok := searchCondition(params.Search); ok {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count products failed")
	}

	var items []models.Product
	err := q.Order(orderClause(params.SortBy, params.SortOrder)).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list products failed")
	}
	return items, total, nil
}

func (r *productRepository) StatusRows(ctx context.Context, userID uuid.UUID) ([]StatusRow, error) {
	var rows []StatusRow
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("status", "end_date").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "load product status rows failed")
	}
	return rows, nil
}

func (r *productRepository) SerialInUse(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("serial_number = ?", serial)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check serial number failed")
	}
	return n > 0, nil
}
