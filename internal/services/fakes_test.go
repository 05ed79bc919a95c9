package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	appErr "github.com/warrantyit/server/pkg/errors"
)

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users    map[uuid.UUID]*models.User
	products map[uuid.UUID]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}, products: map[uuid.UUID]int64{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return appErr.New(appErr.CodeConflict, "entity already exists")
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id any, dest *models.User) error {
	uid, ok := id.(uuid.UUID)
	if !ok {
		parsed, err := uuid.Parse(id.(string))
		if err != nil {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		uid = parsed
	}
	u, ok := r.users[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id any) error {
	delete(r.users, id.(uuid.UUID))
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	for _, u := range r.users {
		if u.Email == email {
			*dest = *u
			return nil
		}
	}
	return appErr.New(appErr.CodeNotFound, "user not found")
}

func (r *fakeUserRepo) CountProducts(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.products[userID], nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeProductRepo is an in-memory repository.ProductRepository mirroring the
// SQL listing semantics (ownership scope, effective-status filter, OR search).
type fakeProductRepo struct {
	items map[uuid.UUID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[uuid.UUID]*models.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *models.Product) error {
	if p.SerialNumber != nil {
		for _, existing := range r.items {
			if existing.SerialNumber != nil && *existing.SerialNumber == *p.SerialNumber {
				return appErr.New(appErr.CodeConflict, "entity already exists")
			}
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id any, dest *models.Product) error {
	p, ok := r.items[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *models.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id any) error {
	uid := id.(uuid.UUID)
	if _, ok := r.items[uid]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(r.items, uid)
	return nil
}

func (r *fakeProductRepo) GetOwned(ctx context.Context, productID, userID uuid.UUID, dest *models.Product) error {
	p, ok := r.items[productID]
	if !ok || p.UserID != userID {
		return appErr.New(appErr.CodeNotFound, "Product not found")
	}
	*dest = *p
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, userID uuid.UUID, params repository.ListParams, now time.Time) ([]models.Product, int64, error) {
	var matched []models.Product
	for _, p := range r.items {
		if p.UserID != userID {
			continue
		}
		if params.Status != "" && !statusMatches(p, params.Status, now) {
			continue
		}
		if params.Search != "" && !searchMatches(p, params.Search) {
			continue
		}
		matched = append(matched, *p)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := sortKey(&matched[i], params.SortBy), sortKey(&matched[j], params.SortBy)
		if params.SortOrder == "asc" {
			return a < b
		}
		return a > b
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func statusMatches(p *models.Product, status models.ProductStatus, now time.Time) bool {
	switch status {
	case models.StatusActive:
		return p.Status != models.StatusClaimed && p.Status != models.StatusCancelled && !p.EndDate.Before(now)
	case models.StatusExpired:
		return p.Status != models.StatusClaimed && p.Status != models.StatusCancelled && p.EndDate.Before(now)
	default:
		return p.Status == status
	}
}

func searchMatches(p *models.Product, search string) bool {
	s := strings.ToLower(strings.TrimSpace(search))
	if strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(p.Brand), s) ||
		strings.Contains(strings.ToLower(p.Type), s) {
		return true
	}
	return p.SerialNumber != nil && strings.Contains(strings.ToLower(*p.SerialNumber), s)
}

func sortKey(p *models.Product, sortBy string) string {
	switch sortBy {
	case "name":
		return p.Name
	case "brand":
		return p.Brand
	case "endDate":
		return p.EndDate.Format(time.RFC3339)
	default:
		// Fixed-width timestamp so lexicographic order matches time order.
		return p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	}
}

func (r *fakeProductRepo) StatusRows(ctx context.Context, userID uuid.UUID) ([]repository.StatusRow, error) {
	var rows []repository.StatusRow
	for _, p := range r.items {
		if p.UserID == userID {
			rows = append(rows, repository.StatusRow{Status: p.Status, EndDate: p.EndDate})
		}
	}
	return rows, nil
}

func (r *fakeProductRepo) SerialInUse(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error) {
	for _, p := range r.items {
		if p.ID == excludeID {
			continue
		}
		if p.SerialNumber != nil && *p.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)
