package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	appErr "github.com/warrantyit/server/pkg/errors"
)

var fixedNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newProductFixture() (*productService, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return &productService{productRepo: repo, now: func() time.Time { return fixedNow }}, repo
}

func strPtr(s string) *string                           { return &s }
func intPtr(i int) *int                                 { return &i }
func statusPtr(s models.ProductStatus) *models.ProductStatus { return &s }

func seed(t *testing.T, svc ProductService, userID uuid.UUID, name string, start time.Time, months int, serial *string) *models.Product {
	t.Helper()
	p, err := svc.Create(context.Background(), userID, &CreateProductInput{
		Name:           name,
		Brand:          "Acme",
		Type:           "Electronics",
		WarrantyPeriod: months,
		StartDate:      start,
		SerialNumber:   serial,
	})
	require.NoError(t, err)
	return p
}

func TestCreateComputesEndDateAndStatus(t *testing.T) {
	svc, _ := newProductFixture()
	userID := uuid.New()

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	p := seed(t, svc, userID, "Laptop", today, 12, nil)

	assert.Equal(t, today.AddDate(0, 12, 0), p.EndDate)
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, userID, p.UserID)
}

func TestCreateDuplicateSerialConflicts(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()

	first := seed(t, svc, userID, "Laptop", fixedNow.AddDate(0, -1, 0), 12, strPtr("SN-001"))

	_, err := svc.Create(context.Background(), uuid.New(), &CreateProductInput{
		Name:           "Phone",
		Brand:          "Acme",
		Type:           "Electronics",
		WarrantyPeriod: 6,
		StartDate:      fixedNow.AddDate(0, -1, 0),
		SerialNumber:   strPtr("SN-001"),
	})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
	assert.Equal(t, "Product with this serial number already exists", appErr.MessageOf(err, ""))

	// First product is unaffected.
	kept, getErr := svc.Get(context.Background(), first.ID, userID)
	require.NoError(t, getErr)
	assert.Equal(t, "SN-001", *kept.SerialNumber)
	assert.Len(t, repo.items, 1)
}

func TestGetOtherUsersProductIsNotFound(t *testing.T) {
	svc, _ := newProductFixture()
	owner := uuid.New()
	p := seed(t, svc, owner, "Laptop", fixedNow.AddDate(0, -1, 0), 12, nil)

	_, err := svc.Get(context.Background(), p.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.Equal(t, "Product not found", appErr.MessageOf(err, ""))
}

func TestStaleActiveResolvesExpiredOnEveryReadPath(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()

	// Stored ACTIVE but past its end date.
	stale := &models.Product{
		UserID:         userID,
		Name:           "Old Kettle",
		Brand:          "Acme",
		Type:           "Appliance",
		WarrantyPeriod: 6,
		StartDate:      fixedNow.AddDate(0, -12, 0),
		EndDate:        fixedNow.AddDate(0, -6, 0),
		Status:         models.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), stale))

	got, err := svc.Get(context.Background(), stale.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, got.Status)

	page, err := svc.List(context.Background(), userID, repository.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.StatusExpired, page.Items[0].Status)

	stats, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 0, stats.Active)

	// The projection never touches storage.
	assert.Equal(t, models.StatusActive, repo.items[stale.ID].Status)
}

func TestListStatusFilterUsesEffectiveStatus(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()

	active := seed(t, svc, userID, "Fresh", fixedNow.AddDate(0, -1, 0), 12, nil)
	stale := &models.Product{
		UserID: userID, Name: "Stale", Brand: "Acme", Type: "Electronics",
		WarrantyPeriod: 3, StartDate: fixedNow.AddDate(0, -12, 0),
		EndDate: fixedNow.AddDate(0, -9, 0), Status: models.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), stale))
	claimed := &models.Product{
		UserID: userID, Name: "Claimed", Brand: "Acme", Type: "Electronics",
		WarrantyPeriod: 3, StartDate: fixedNow.AddDate(0, -12, 0),
		EndDate: fixedNow.AddDate(0, -9, 0), Status: models.StatusClaimed,
	}
	require.NoError(t, repo.Create(context.Background(), claimed))

	page, err := svc.List(context.Background(), userID, repository.ListParams{Status: models.StatusActive})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, active.ID, page.Items[0].ID)

	page, err = svc.List(context.Background(), userID, repository.ListParams{Status: models.StatusExpired})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, stale.ID, page.Items[0].ID)

	page, err = svc.List(context.Background(), userID, repository.ListParams{Status: models.StatusClaimed})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, claimed.ID, page.Items[0].ID)
}

func TestListPaginationDescriptor(t *testing.T) {
	svc, _ := newProductFixture()
	userID := uuid.New()
	seed(t, svc, userID, "One", fixedNow.AddDate(0, -1, 0), 12, nil)
	seed(t, svc, userID, "Two", fixedNow.AddDate(0, -1, 0), 12, nil)

	page1, err := svc.List(context.Background(), userID, repository.ListParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 1)
	assert.Equal(t, int64(2), page1.Pagination.Total)
	assert.Equal(t, 2, page1.Pagination.TotalPages)
	assert.True(t, page1.Pagination.HasNext)
	assert.False(t, page1.Pagination.HasPrev)

	page2, err := svc.List(context.Background(), userID, repository.ListParams{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 1)
	assert.False(t, page2.Pagination.HasNext)
	assert.True(t, page2.Pagination.HasPrev)
	assert.NotEqual(t, page1.Items[0].ID, page2.Items[0].ID)
}

func TestListSearch(t *testing.T) {
	svc, _ := newProductFixture()
	userID := uuid.New()
	seed(t, svc, userID, "ThinkPad X1", fixedNow.AddDate(0, -1, 0), 12, strPtr("TP-123"))
	seed(t, svc, userID, "Galaxy S24", fixedNow.AddDate(0, -1, 0), 12, nil)

	page, err := svc.List(context.Background(), userID, repository.ListParams{Search: "thinkpad"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ThinkPad X1", page.Items[0].Name)

	// Serial numbers are searchable too.
	page, err = svc.List(context.Background(), userID, repository.ListParams{Search: "tp-12"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestUpdateRecomputesEndDate(t *testing.T) {
	svc, _ := newProductFixture()
	userID := uuid.New()
	start := fixedNow.AddDate(0, -2, 0)
	p := seed(t, svc, userID, "Laptop", start, 12, nil)

	updated, err := svc.Update(context.Background(), p.ID, userID, &UpdateProductInput{WarrantyPeriod: intPtr(24)})
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 24, 0), updated.EndDate)

	newStart := fixedNow.AddDate(0, -1, 0)
	updated, err = svc.Update(context.Background(), p.ID, userID, &UpdateProductInput{StartDate: &newStart})
	require.NoError(t, err)
	assert.Equal(t, newStart.AddDate(0, 24, 0), updated.EndDate)
}

func TestUpdateSerialConflictAndOwnership(t *testing.T) {
	svc, _ := newProductFixture()
	userID := uuid.New()
	p1 := seed(t, svc, userID, "Laptop", fixedNow.AddDate(0, -1, 0), 12, strPtr("SN-A"))
	p2 := seed(t, svc, userID, "Phone", fixedNow.AddDate(0, -1, 0), 12, strPtr("SN-B"))

	_, err := svc.Update(context.Background(), p2.ID, userID, &UpdateProductInput{SerialNumber: strPtr("SN-A")})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))

	// Re-submitting a product's own serial is not a conflict.
	_, err = svc.Update(context.Background(), p1.ID, userID, &UpdateProductInput{SerialNumber: strPtr("SN-A")})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), p1.ID, uuid.New(), &UpdateProductInput{Name: strPtr("Stolen")})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpdateStatusToClaimedSticks(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()
	p := seed(t, svc, userID, "Laptop", fixedNow.AddDate(0, -11, 0), 3, nil)

	updated, err := svc.Update(context.Background(), p.ID, userID, &UpdateProductInput{Status: statusPtr(models.StatusClaimed)})
	require.NoError(t, err)
	// CLAIMED is authoritative even though the warranty has lapsed.
	assert.Equal(t, models.StatusClaimed, updated.Status)
	assert.Equal(t, models.StatusClaimed, repo.items[p.ID].Status)

	_, err = svc.Update(context.Background(), p.ID, userID, &UpdateProductInput{Status: statusPtr("BOGUS")})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestDelete(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()
	p := seed(t, svc, userID, "Laptop", fixedNow.AddDate(0, -1, 0), 12, nil)

	err := svc.Delete(context.Background(), p.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.Len(t, repo.items, 1)

	require.NoError(t, svc.Delete(context.Background(), p.ID, userID))
	assert.Empty(t, repo.items)
}

func TestStatsPartitionAndExpiringSoon(t *testing.T) {
	svc, repo := newProductFixture()
	userID := uuid.New()

	add := func(status models.ProductStatus, end time.Time) {
		p := &models.Product{
			UserID: userID, Name: "P", Brand: "B", Type: "T",
			WarrantyPeriod: 12, StartDate: end.AddDate(-1, 0, 0),
			EndDate: end, Status: status,
		}
		require.NoError(t, repo.Create(context.Background(), p))
	}

	add(models.StatusActive, fixedNow.AddDate(0, 6, 0))           // active
	add(models.StatusActive, fixedNow.Add(10*24*time.Hour))       // active, expiring soon
	add(models.StatusActive, fixedNow.Add(models.ExpiringSoonWindow)) // active, boundary inclusive
	add(models.StatusActive, fixedNow.Add(-time.Hour))            // stale: counts expired
	add(models.StatusExpired, fixedNow.Add(-time.Hour))           // expired
	add(models.StatusClaimed, fixedNow.Add(-time.Hour))           // claimed despite lapse
	add(models.StatusCancelled, fixedNow.AddDate(0, 6, 0))        // cancelled despite validity

	// A different user's product must not bleed in.
	other := &models.Product{UserID: uuid.New(), Name: "X", Brand: "B", Type: "T",
		WarrantyPeriod: 12, StartDate: fixedNow, EndDate: fixedNow.AddDate(1, 0, 0), Status: models.StatusActive}
	require.NoError(t, repo.Create(context.Background(), other))

	stats, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 2, stats.Expired)
	assert.Equal(t, 1, stats.Claimed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 2, stats.ExpiringSoon)
	assert.Equal(t, stats.Total, stats.Active+stats.Expired+stats.Claimed+stats.Cancelled)
}

func TestStatsEmptyUser(t *testing.T) {
	svc, _ := newProductFixture()
	stats, err := svc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &ProductStats{}, stats)
}
