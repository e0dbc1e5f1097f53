package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/visit"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	visitService "github.com/carelink/homecare-backend-go/internal/service/visit"
	"github.com/go-chi/chi/v5"
)

type VisitHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	UpdateNote(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyVisits(w http.ResponseWriter, r *http.Request)
}

type VisitHandlerImpl struct {
	visitService visitService.Service
}

func NewVisitHandler(service visitService.Service) VisitHandler {
	return &VisitHandlerImpl{visitService: service}
}

// CheckIn implements VisitHandler.
func (h *VisitHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq visit.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	checkInReq.WorkerID = workerID

	if err := checkInReq.Validate(); err != nil {
		slog.Error("Check-in validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.visitService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked in", "visit_id", created.ID, "worker_id", workerID)
	response.Created(w, "Checked in successfully", toVisitResponse(created))
}

// CheckOut implements VisitHandler.
func (h *VisitHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq visit.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("Check-out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkOutReq.VisitID = chi.URLParam(r, "id")

	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	checkOutReq.WorkerID = workerID

	if err := checkOutReq.Validate(); err != nil {
		slog.Error("Check-out validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.visitService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("Check-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked out", "visit_id", updated.ID, "worker_id", workerID)
	response.SuccessWithMessage(w, "Checked out successfully", toVisitResponse(updated))
}

// UpdateNote implements VisitHandler.
func (h *VisitHandlerImpl) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var noteReq visit.UpdateNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&noteReq); err != nil {
		slog.Error("Update note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	noteReq.VisitID = chi.URLParam(r, "id")

	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	noteReq.WorkerID = workerID

	if err := noteReq.Validate(); err != nil {
		slog.Error("Update note validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.visitService.UpdateNote(r.Context(), noteReq)
	if err != nil {
		slog.Error("Update note service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note updated successfully", toVisitResponse(updated))
}

// List implements VisitHandler. Admin view across workers.
func (h *VisitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := visit.VisitFilter{
		WorkerID:     queryStrPtr(r, "worker_id"),
		AssignmentID: queryStrPtr(r, "assignment_id"),
		DateFrom:     queryStrPtr(r, "date_from"),
		DateTo:       queryStrPtr(r, "date_to"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	h.list(w, r, filter)
}

// MyVisits implements VisitHandler. Worker-scoped listing.
func (h *VisitHandlerImpl) MyVisits(w http.ResponseWriter, r *http.Request) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := visit.VisitFilter{
		WorkerID:     &workerID,
		AssignmentID: queryStrPtr(r, "assignment_id"),
		DateFrom:     queryStrPtr(r, "date_from"),
		DateTo:       queryStrPtr(r, "date_to"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	h.list(w, r, filter)
}

func (h *VisitHandlerImpl) list(w http.ResponseWriter, r *http.Request, filter visit.VisitFilter) {
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	visits, total, err := h.visitService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List visits service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]visit.VisitResponse, 0, len(visits))
	for _, item := range visits {
		items = append(items, toVisitResponse(item))
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

func toVisitResponse(v visit.Visit) visit.VisitResponse {
	resp := visit.VisitResponse{
		ID:            v.ID,
		AssignmentID:  v.AssignmentID,
		WorkerID:      v.WorkerID,
		WorkerName:    v.WorkerName,
		ClientName:    v.ClientName,
		Date:          v.Date.Format(timeutil.DateLayout),
		Note:          v.Note,
		WorkedMinutes: v.WorkedMinutes,
		CheckInLat:    v.CheckInLatitude,
		CheckInLng:    v.CheckInLongitude,
	}
	if v.CheckInAt != nil {
		checkIn := v.CheckInAt.Format(time.RFC3339)
		resp.CheckInAt = &checkIn
	}
	if v.CheckOutAt != nil {
		checkOut := v.CheckOutAt.Format(time.RFC3339)
		resp.CheckOutAt = &checkOut
	}

	return resp
}
