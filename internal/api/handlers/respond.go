package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/warrantyit/server/internal/api/types"
	appErr "github.com/warrantyit/server/pkg/errors"
	"github.com/warrantyit/server/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, types.APIResponse{Success: true, Message: message, Data: data})
}

// writeError maps a taxonomy error onto a status code. Unexpected errors are
// logged with full detail server-side and surfaced as a bare 500.
func writeError(w http.ResponseWriter, err error) {
	status := types.HTTPStatus(err)
	msg := appErr.MessageOf(err, "Internal server error")
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
		msg = "Internal server error"
	}
	writeJSON(w, status, types.APIResponse{Success: false, Message: msg, Error: msg})
}

func writeInvalid(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, types.APIResponse{Success: false, Message: msg, Error: msg})
}
