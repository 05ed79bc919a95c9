package handlers

import (
	"net/http"
	"time"

	"github.com/warrantyit/server/internal/api/types"
)

type HealthHandler struct {
	env string
}

func NewHealthHandler(env string) *HealthHandler { return &HealthHandler{env: env} }

// Health godoc
// @Summary  Health check
// @Tags     system
// @Produce  json
// @Success  200 {object} types.APIResponse
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Message: "API is healthy",
		Data: map[string]string{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": h.env,
		},
	})
}
