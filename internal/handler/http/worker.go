package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	workerService "github.com/carelink/homecare-backend-go/internal/service/worker"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService workerService.Service
}

func NewWorkerHandler(service workerService.Service) WorkerHandler {
	return &WorkerHandlerImpl{workerService: service}
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create worker validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker created", "worker_id", created.ID)
	response.Created(w, "Worker created successfully", toWorkerResponse(created))
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerFilter{
		Name:      queryStrPtr(r, "name"),
		IsActive:  queryBoolPtr(r, "is_active"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	workers, total, err := h.workerService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List workers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]worker.WorkerResponse, 0, len(workers))
	for _, item := range workers {
		items = append(items, toWorkerResponse(item))
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

// GetByID implements WorkerHandler.
func (h *WorkerHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	workerData, err := h.workerService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toWorkerResponse(workerData))
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq worker.UpdateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update worker validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.workerService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", toWorkerResponse(updated))
}

// Delete implements WorkerHandler.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:         w.ID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		WorkerCode: w.WorkerCode,
		Email:      w.Email,
		Phone:      w.Phone,
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  w.UpdatedAt.Format(time.RFC3339),
	}
}

// Shared query helpers for list endpoints.

func queryStrPtr(r *http.Request, key string) *string {
	if value := r.URL.Query().Get(key); value != "" {
		return &value
	}
	return nil
}

func queryBoolPtr(r *http.Request, key string) *bool {
	if value := r.URL.Query().Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return &parsed
		}
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	value, _ := strconv.Atoi(r.URL.Query().Get(key))
	return value
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
