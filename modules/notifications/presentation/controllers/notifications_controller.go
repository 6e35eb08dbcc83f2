package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/camposys/fieldops/modules/notifications/domain/entities/notification"
	"github.com/camposys/fieldops/modules/notifications/services"
	"github.com/camposys/fieldops/pkg/application"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/middleware"
)

type notificationViewModel struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	Audience    string `json:"audience"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	ReadAt      string `json:"read_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toViewModel(n notification.Notification) notificationViewModel {
	readAt := ""
	if n.ReadAt() != nil {
		readAt = n.ReadAt().Format(time.RFC3339)
	}
	return notificationViewModel{
		ID:          n.ID().String(),
		WorkOrderID: n.WorkOrderID().String(),
		Audience:    n.Audience(),
		Title:       n.Title(),
		Message:     n.Message(),
		ReadAt:      readAt,
		CreatedAt:   n.CreatedAt().Format(time.RFC3339),
	}
}

type NotificationsAPIController struct {
	app           application.Application
	notifications *services.NotificationService
	basePath      string
}

func NewNotificationsAPIController(app application.Application) application.Controller {
	return &NotificationsAPIController{
		app:           app,
		notifications: app.Service(services.NotificationService{}).(*services.NotificationService),
		basePath:      "/notifications/api",
	}
}

func (c *NotificationsAPIController) Key() string {
	return c.basePath
}

func (c *NotificationsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/notifications", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/notifications/{id}/read", c.MarkRead).Methods(http.MethodPost)
}

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

func (c *NotificationsAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &notification.FindParams{Limit: 50}
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 200 {
			params.Limit = parsed
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("offset")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}
	params.Audience = strings.TrimSpace(r.URL.Query().Get("audience"))
	params.UnreadOnly = r.URL.Query().Get("unread") == "true"

	items, err := c.notifications.GetPaginated(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "NOTIFICATIONS_INTERNAL", "internal error")
		return
	}

	out := make([]notificationViewModel, 0, len(items))
	for _, n := range items {
		out = append(out, toViewModel(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *NotificationsAPIController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "NOTIFICATIONS_INVALID_ID", "invalid id")
		return
	}
	if err := c.notifications.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "NOTIFICATIONS_NOT_FOUND", "notification not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "NOTIFICATIONS_INTERNAL", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
