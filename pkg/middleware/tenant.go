package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/camposys/fieldops/pkg/composables"
)

// WithTenant resolves the tenant of each request from the given header and
// puts it in the context. Requests without the header fall back to the
// default tenant; a header that is present but malformed is rejected.
func WithTenant(header string, defaultTenant uuid.UUID) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID := defaultTenant
			if raw := r.Header.Get(header); raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte(`{"error":{"code":"INVALID_TENANT","message":"invalid tenant header"}}`))
					return
				}
				tenantID = parsed
			}
			next.ServeHTTP(w, r.WithContext(composables.WithTenantID(r.Context(), tenantID)))
		})
	}
}
