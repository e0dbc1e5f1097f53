package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	assignmentService "github.com/carelink/homecare-backend-go/internal/service/assignment"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	MySchedule(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignmentService.Service
}

func NewAssignmentHandler(service assignmentService.Service) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: service}
}

// Create implements AssignmentHandler. A schedule conflict surfaces as a 409
// carrying every overlapping slot pair.
func (h *AssignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq assignment.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create assignment validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.assignmentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Assignment created", "assignment_id", created.ID, "worker_id", created.WorkerID)
	response.Created(w, "Assignment created successfully", toAssignmentResponse(created))
}

// List implements AssignmentHandler.
func (h *AssignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := assignment.AssignmentFilter{
		WorkerID: queryStrPtr(r, "worker_id"),
		ClientID: queryStrPtr(r, "client_id"),
		IsActive: queryBoolPtr(r, "is_active"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, total, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List assignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, item := range assignments {
		items = append(items, toAssignmentResponse(item))
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

// GetByID implements AssignmentHandler.
func (h *AssignmentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	assignmentData, err := h.assignmentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toAssignmentResponse(assignmentData))
}

// Update implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq assignment.UpdateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update assignment validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.assignmentService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated successfully", toAssignmentResponse(updated))
}

// Deactivate implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Deactivate assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deactivated successfully", nil)
}

// MySchedule implements AssignmentHandler. Worker-scoped: the worker comes
// from the token, not the URL.
func (h *AssignmentHandlerImpl) MySchedule(w http.ResponseWriter, r *http.Request) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.assignmentService.ListForWorker(r.Context(), workerID)
	if err != nil {
		slog.Error("My schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, item := range assignments {
		items = append(items, toAssignmentResponse(item))
	}

	response.Success(w, items)
}

func toAssignmentResponse(a assignment.Assignment) assignment.AssignmentResponse {
	resp := assignment.AssignmentResponse{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		WorkerName: a.WorkerName,
		ClientID:   a.ClientID,
		ClientName: a.ClientName,
		StartDate:  a.StartDate.Format(timeutil.DateLayout),
		IsActive:   a.IsActive,
		TimeSlots:  make([]assignment.TimeSlotResponse, 0, len(a.TimeSlots)),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
	if a.EndDate != nil {
		endDate := a.EndDate.Format(timeutil.DateLayout)
		resp.EndDate = &endDate
	}

	for _, slot := range a.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, assignment.TimeSlotResponse{
			ID:        slot.ID,
			DayOfWeek: slot.DayOfWeek,
			DayName:   timeutil.DayName(slot.DayOfWeek),
			DayType:   string(slot.DayType),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return resp
}
