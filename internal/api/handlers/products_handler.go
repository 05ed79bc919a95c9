package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/warrantyit/server/internal/api/middleware"
	"github.com/warrantyit/server/internal/api/types"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	"github.com/warrantyit/server/internal/services"
)

type ProductsHandler struct {
	products services.ProductService
	validate *validator.Validate
}

func NewProductsHandler(products services.ProductService, v *validator.Validate) *ProductsHandler {
	return &ProductsHandler{products: products, validate: v}
}

// Create godoc
// @Summary  Register a purchased product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body types.CreateProductRequest true "product"
// @Success  201 {object} types.APIResponse
// @Router   /api/products [post]
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeInvalid(w, types.ValidationMessage(err))
		return
	}
	startDate, err := types.ParseStartDate(req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}

	input := &services.CreateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Type:           req.Type,
		WarrantyPeriod: req.WarrantyPeriod,
		StartDate:      startDate,
		Description:    req.Description,
		SerialNumber:   req.SerialNumber,
		PurchasePrice:  req.PurchasePrice,
	}

	product, err := h.products.Create(r.Context(), middleware.GetUserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Product created successfully", product)
}

// List godoc
// @Summary  List own products, paginated
// @Tags     products
// @Produce  json
// @Security BearerAuth
// @Param    page query int false "page (default 1)"
// @Param    limit query int false "page size (1-100, default 10)"
// @Param    sortBy query string false "sort field (default createdAt)"
// @Param    sortOrder query string false "asc or desc (default desc)"
// @Param    status query string false "ACTIVE, EXPIRED, CLAIMED or CANCELLED"
// @Param    search query string false "substring over name, brand, type, serial"
// @Success  200 {object} types.APIResponse
// @Router   /api/products [get]
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := repository.ListParams{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Search:    q.Get("search"),
	}
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))

	if s := q.Get("status"); s != "" {
		status := models.ProductStatus(s)
		if !models.ValidStatus(status) {
			writeInvalid(w, "Status must be one of: ACTIVE, EXPIRED, CLAIMED, CANCELLED")
			return
		}
		params.Status = status
	}

	page, err := h.products.List(r.Context(), middleware.GetUserID(r.Context()), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Products retrieved successfully", page)
}

// Stats godoc
// @Summary  Aggregate counts over own products
// @Tags     products
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} types.APIResponse
// @Router   /api/products/stats [get]
func (h *ProductsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.products.Stats(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Product statistics retrieved successfully", stats)
}

// Get godoc
// @Summary  Fetch one product
// @Tags     products
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "product id"
// @Success  200 {object} types.APIResponse
// @Router   /api/products/{id} [get]
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.products.Get(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update godoc
// @Summary  Update one product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "product id"
// @Param    body body types.UpdateProductRequest true "fields to change"
// @Success  200 {object} types.APIResponse
// @Router   /api/products/{id} [put]
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req types.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeInvalid(w, types.ValidationMessage(err))
		return
	}

	input := &services.UpdateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Type:           req.Type,
		WarrantyPeriod: req.WarrantyPeriod,
		Description:    req.Description,
		SerialNumber:   req.SerialNumber,
		PurchasePrice:  req.PurchasePrice,
	}
	if req.StartDate != nil {
		startDate, err := types.ParseStartDate(*req.StartDate)
		if err != nil {
			writeError(w, err)
			return
		}
		input.StartDate = &startDate
	}
	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		input.Status = &status
	}

	product, err := h.products.Update(r.Context(), id, middleware.GetUserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Product updated successfully", product)
}

// Delete godoc
// @Summary  Delete one product
// @Tags     products
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "product id"
// @Success  200 {object} types.APIResponse
// @Router   /api/products/{id} [delete]
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}

func productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "Invalid product ID")
		return uuid.Nil, false
	}
	return id, true
}
