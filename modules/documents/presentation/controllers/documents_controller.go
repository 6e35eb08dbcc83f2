package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/presentation/mappers"
	"github.com/camposys/fieldops/modules/documents/presentation/viewmodels"
	"github.com/camposys/fieldops/modules/documents/services"
	"github.com/camposys/fieldops/pkg/application"
	"github.com/camposys/fieldops/pkg/middleware"
)

type DocumentsAPIController struct {
	app       application.Application
	documents *services.DocumentService
	basePath  string
}

func NewDocumentsAPIController(app application.Application) application.Controller {
	return &DocumentsAPIController{
		app:       app,
		documents: app.Service(services.DocumentService{}).(*services.DocumentService),
		basePath:  "/documents/api",
	}
}

func (c *DocumentsAPIController) Key() string {
	return c.basePath
}

func (c *DocumentsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/tree", c.Tree).Methods(http.MethodGet)
	router.HandleFunc("/documents", c.List).Methods(http.MethodGet)
	router.HandleFunc("/documents/{id}", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/documents", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/documents/{id}", c.Delete).Methods(http.MethodDelete)
}

// Tree returns the folder listing of a client's archive at the given path.
// Path segments come as repeated "path" query parameters so folder names may
// contain any character. Unknown paths resolve to an empty folder, not 404.
func (c *DocumentsAPIController) Tree(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(strings.TrimSpace(r.URL.Query().Get("client_id")))
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "DOCUMENTS_INVALID_CLIENT", "invalid client_id")
		return
	}
	path := r.URL.Query()["path"]

	view, err := c.documents.ResolveTree(r.Context(), clientID, path)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "DOCUMENTS_INTERNAL", "internal error")
		return
	}

	nodes := make([]viewmodels.TreeNode, 0, len(view))
	for _, node := range view {
		nodes = append(nodes, mappers.ViewNodeToTreeNode(node))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"client_id": clientID.String(),
		"path":      path,
		"nodes":     nodes,
	})
}

func (c *DocumentsAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &document.FindParams{Limit: 20}
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
	if v := strings.TrimSpace(r.URL.Query().Get("client_id")); v != "" {
		clientID, err := uuid.Parse(v)
		if err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "DOCUMENTS_INVALID_CLIENT", "invalid client_id")
			return
		}
		params.ClientID = clientID
	}

	items, total, err := c.documents.GetPaginated(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "DOCUMENTS_INTERNAL", "internal error")
		return
	}

	out := make([]*viewmodels.Document, 0, len(items))
	for _, d := range items {
		out = append(out, mappers.DocumentToViewModel(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *DocumentsAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "DOCUMENTS_INVALID_ID", "invalid id")
		return
	}

	d, err := c.documents.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "DOCUMENTS_NOT_FOUND", "document not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "DOCUMENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.DocumentToViewModel(d))
}

func (c *DocumentsAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto document.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "DOCUMENTS_INVALID_JSON", "invalid json")
		return
	}
	if fieldErrors, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":    "DOCUMENTS_VALIDATION_FAILED",
				"message": "validation failed",
				"fields":  fieldErrors,
			},
		})
		return
	}

	created, err := c.documents.Create(r.Context(), &dto)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "DOCUMENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.DocumentToViewModel(created))
}

func (c *DocumentsAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "DOCUMENTS_INVALID_ID", "invalid id")
		return
	}
	if err := c.documents.Delete(r.Context(), id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "DOCUMENTS_NOT_FOUND", "document not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "DOCUMENTS_INTERNAL", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
