package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/services"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"go.uber.org/zap"
)

// JSONError - стандартный ответ об ошибке {"ok":false,"error":...}
func JSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": message}); err != nil {
		logger.Error("Failed to encode JSON error:", zap.Error(err))
	}
}

// JSONResponse - успешный ответ, полезная нагрузка дополняется "ok":true
func JSONResponse(w http.ResponseWriter, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	payload["ok"] = true
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// HandleServiceError - единое отображение ошибок сервисов в HTTP-ответ.
// Отказ в доступе не уточняет, какого именно разрешения не хватило.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		JSONError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		JSONError(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, services.ErrNoPermission):
		JSONError(w, "No permission", http.StatusForbidden)
	case errors.Is(err, storage.ErrUserNotFound):
		JSONError(w, "Unauthorized", http.StatusUnauthorized)
	default:
		logger.Error("Service error:", zap.Error(err))
		JSONError(w, "Server error", http.StatusInternalServerError)
	}
}
