package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/warrantyit/server/internal/api/middleware"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	"github.com/warrantyit/server/internal/services"
)

// authServiceStub lets each test script exactly the service behavior it needs.
type authServiceStub struct {
	register func(ctx context.Context, name, email, password string) (*models.User, string, error)
	login    func(ctx context.Context, email, password string) (*models.User, string, error)
	profile  func(ctx context.Context, userID uuid.UUID) (*services.Profile, error)
}

func (s *authServiceStub) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	return s.register(ctx, name, email, password)
}

func (s *authServiceStub) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return s.login(ctx, email, password)
}

func (s *authServiceStub) Profile(ctx context.Context, userID uuid.UUID) (*services.Profile, error) {
	return s.profile(ctx, userID)
}

type productServiceStub struct {
	create func(ctx context.Context, userID uuid.UUID, input *services.CreateProductInput) (*models.Product, error)
	get    func(ctx context.Context, productID, userID uuid.UUID) (*models.Product, error)
	list   func(ctx context.Context, userID uuid.UUID, params repository.ListParams) (*services.ProductPage, error)
	update func(ctx context.Context, productID, userID uuid.UUID, input *services.UpdateProductInput) (*models.Product, error)
	delete func(ctx context.Context, productID, userID uuid.UUID) error
	stats  func(ctx context.Context, userID uuid.UUID) (*services.ProductStats, error)
}

func (s *productServiceStub) Create(ctx context.Context, userID uuid.UUID, input *services.CreateProductInput) (*models.Product, error) {
	return s.create(ctx, userID, input)
}

func (s *productServiceStub) Get(ctx context.Context, productID, userID uuid.UUID) (*models.Product, error) {
	return s.get(ctx, productID, userID)
}

func (s *productServiceStub) List(ctx context.Context, userID uuid.UUID, params repository.ListParams) (*services.ProductPage, error) {
	return s.list(ctx, userID, params)
}

func (s *productServiceStub) Update(ctx context.Context, productID, userID uuid.UUID, input *services.UpdateProductInput) (*models.Product, error) {
	return s.update(ctx, productID, userID, input)
}

func (s *productServiceStub) Delete(ctx context.Context, productID, userID uuid.UUID) error {
	return s.delete(ctx, productID, userID)
}

func (s *productServiceStub) Stats(ctx context.Context, userID uuid.UUID) (*services.ProductStats, error) {
	return s.stats(ctx, userID)
}

// envelope mirrors types.APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser stamps the request context the way the auth middleware would.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}
