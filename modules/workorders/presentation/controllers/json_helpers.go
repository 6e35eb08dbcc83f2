package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/camposys/fieldops/pkg/composables"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if logger, ok := composables.TryUseLogger(r.Context()); ok && status >= http.StatusInternalServerError {
		logger.WithField("code", code).Error(message)
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
