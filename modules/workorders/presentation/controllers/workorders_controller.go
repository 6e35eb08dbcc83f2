package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
	"github.com/camposys/fieldops/modules/workorders/presentation/mappers"
	"github.com/camposys/fieldops/modules/workorders/presentation/viewmodels"
	"github.com/camposys/fieldops/modules/workorders/services"
	"github.com/camposys/fieldops/pkg/application"
	"github.com/camposys/fieldops/pkg/middleware"
)

type WorkOrdersAPIController struct {
	app        application.Application
	workOrders *services.WorkOrderService
	basePath   string
}

func NewWorkOrdersAPIController(app application.Application) application.Controller {
	return &WorkOrdersAPIController{
		app:        app,
		workOrders: app.Service(services.WorkOrderService{}).(*services.WorkOrderService),
		basePath:   "/workorders/api",
	}
}

func (c *WorkOrdersAPIController) Key() string {
	return c.basePath
}

func (c *WorkOrdersAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/board", c.Board).Methods(http.MethodGet)
	router.HandleFunc("/calendar", c.Calendar).Methods(http.MethodGet)
	router.HandleFunc("/workorders/{id}", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("/workorders", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/workorders/{id}/report", c.UpdateReport).Methods(http.MethodPut)
	writeRouter.HandleFunc("/workorders/{id}/transition", c.Transition).Methods(http.MethodPost)
	writeRouter.HandleFunc("/workorders/transition", c.TransitionMany).Methods(http.MethodPost)
}

func (c *WorkOrdersAPIController) findParams(r *http.Request) (*workorder.FindParams, error) {
	params := &workorder.FindParams{}
	if v := strings.TrimSpace(r.URL.Query().Get("client_id")); v != "" {
		clientID, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		params.ClientID = clientID
	}
	for _, raw := range r.URL.Query()["bucket"] {
		params.Buckets = append(params.Buckets, workorder.NormalizeStatus(raw))
	}
	return params, nil
}

func (c *WorkOrdersAPIController) Board(w http.ResponseWriter, r *http.Request) {
	params, err := c.findParams(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_CLIENT", "invalid client_id")
		return
	}

	grouped, err := c.workOrders.Board(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": mappers.BoardToViewModel(grouped),
	})
}

func (c *WorkOrdersAPIController) Calendar(w http.ResponseWriter, r *http.Request) {
	params, err := c.findParams(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_CLIENT", "invalid client_id")
		return
	}

	calendar, err := c.workOrders.Calendar(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days": mappers.CalendarToViewModel(calendar),
	})
}

func (c *WorkOrdersAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_ID", "invalid id")
		return
	}

	order, err := c.workOrders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, workorder.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "WORKORDERS_NOT_FOUND", "work order not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.WorkOrderToViewModel(order))
}

func (c *WorkOrdersAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto workorder.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_JSON", "invalid json")
		return
	}
	if fieldErrors, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":    "WORKORDERS_VALIDATION_FAILED",
				"message": "validation failed",
				"fields":  fieldErrors,
			},
		})
		return
	}

	created, err := c.workOrders.Create(r.Context(), &dto)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.WorkOrderToViewModel(created))
}

func (c *WorkOrdersAPIController) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_ID", "invalid id")
		return
	}

	var body struct {
		Report string `json:"report"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_JSON", "invalid json")
		return
	}

	updated, err := c.workOrders.UpdateReport(r.Context(), id, body.Report)
	if err != nil {
		if errors.Is(err, workorder.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "WORKORDERS_NOT_FOUND", "work order not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.WorkOrderToViewModel(updated))
}

// Transition moves a work order to a target bucket. A missing precondition
// (completion without a report) is a validation failure; a move the workflow
// table does not allow is a conflict with the order's current state.
func (c *WorkOrdersAPIController) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_ID", "invalid id")
		return
	}

	var body struct {
		Target string `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_JSON", "invalid json")
		return
	}
	target := workorder.NormalizeStatus(body.Target)

	updated, effects, err := c.workOrders.Transition(r.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, workorder.ErrNotFound):
			writeAPIError(w, r, http.StatusNotFound, "WORKORDERS_NOT_FOUND", "work order not found")
		case errors.Is(err, board.ErrMissingReport):
			writeAPIError(w, r, http.StatusUnprocessableEntity, board.ErrMissingReport.Code, board.ErrMissingReport.Message)
		case errors.Is(err, board.ErrIllegalTransition):
			writeAPIError(w, r, http.StatusConflict, board.ErrIllegalTransition.Code, board.ErrIllegalTransition.Message)
		default:
			writeAPIError(w, r, http.StatusInternalServerError, "WORKORDERS_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, mappers.TransitionToViewModel(updated, effects))
}

// TransitionMany moves a whole selection to the same target. Partial failure
// is a normal outcome: the response reports the moved orders and, per id, the
// error code of every order that stayed put.
func (c *WorkOrdersAPIController) TransitionMany(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs    []string `json:"ids"`
		Target string   `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_JSON", "invalid json")
		return
	}
	if len(body.IDs) == 0 {
		writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_EMPTY_SELECTION", "no work orders selected")
		return
	}

	ids := make([]uuid.UUID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "WORKORDERS_INVALID_ID", "invalid id")
			return
		}
		ids = append(ids, id)
	}
	target := workorder.NormalizeStatus(body.Target)

	updated, failed := c.workOrders.TransitionMany(r.Context(), ids, target)

	out := make([]*viewmodels.WorkOrder, 0, len(updated))
	for _, order := range updated {
		out = append(out, mappers.WorkOrderToViewModel(order))
	}
	failures := make(map[string]string, len(failed))
	for id, err := range failed {
		code := "WORKORDERS_INTERNAL"
		switch {
		case errors.Is(err, workorder.ErrNotFound):
			code = "WORKORDERS_NOT_FOUND"
		case errors.Is(err, board.ErrMissingReport):
			code = board.ErrMissingReport.Code
		case errors.Is(err, board.ErrIllegalTransition):
			code = board.ErrIllegalTransition.Code
		}
		failures[id.String()] = code
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"updated": out,
		"failed":  failures,
	})
}
