package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/modules/clients/presentation/mappers"
	"github.com/camposys/fieldops/modules/clients/presentation/viewmodels"
	"github.com/camposys/fieldops/modules/clients/services"
	"github.com/camposys/fieldops/pkg/application"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/middleware"
)

type ClientsAPIController struct {
	app      application.Application
	clients  *services.ClientService
	basePath string
}

func NewClientsAPIController(app application.Application) application.Controller {
	return &ClientsAPIController{
		app:      app,
		clients:  app.Service(services.ClientService{}).(*services.ClientService),
		basePath: "/clients/api",
	}
}

func (c *ClientsAPIController) Key() string {
	return c.basePath
}

func (c *ClientsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/clients", c.List).Methods(http.MethodGet)
	router.HandleFunc("/clients/{id}", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/clients", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/clients/{id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/clients/{id}", c.Delete).Methods(http.MethodDelete)
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

func (c *ClientsAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &client.FindParams{Limit: 20}
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			params.Limit = parsed
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("offset")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}
	params.Search = strings.TrimSpace(r.URL.Query().Get("search"))

	items, total, err := c.clients.GetPaginated(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CLIENTS_INTERNAL", "internal error")
		return
	}

	out := make([]*viewmodels.Client, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.ClientToViewModel(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *ClientsAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CLIENTS_INVALID_ID", "invalid id")
		return
	}

	item, err := c.clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CLIENTS_NOT_FOUND", "client not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CLIENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.ClientToViewModel(item))
}

func (c *ClientsAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto client.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CLIENTS_INVALID_JSON", "invalid json")
		return
	}
	if fieldErrors, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":    "CLIENTS_VALIDATION_FAILED",
				"message": "validation failed",
				"fields":  fieldErrors,
			},
		})
		return
	}

	created, err := c.clients.Create(r.Context(), &dto)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CLIENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.ClientToViewModel(created))
}

func (c *ClientsAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CLIENTS_INVALID_ID", "invalid id")
		return
	}

	var dto client.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CLIENTS_INVALID_JSON", "invalid json")
		return
	}
	if fieldErrors, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":    "CLIENTS_VALIDATION_FAILED",
				"message": "validation failed",
				"fields":  fieldErrors,
			},
		})
		return
	}

	updated, err := c.clients.Update(r.Context(), id, &dto)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CLIENTS_NOT_FOUND", "client not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CLIENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.ClientToViewModel(updated))
}

func (c *ClientsAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CLIENTS_INVALID_ID", "invalid id")
		return
	}
	if err := c.clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CLIENTS_NOT_FOUND", "client not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CLIENTS_INTERNAL", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
