package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/holiday"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	holidayService "github.com/carelink/homecare-backend-go/internal/service/holiday"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holidayService.Service
}

func NewHolidayHandler(service holidayService.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: service}
}

// Upsert implements HolidayHandler. Posting an existing date renames it.
func (h *HolidayHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq holiday.UpsertHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := upsertReq.Validate(); err != nil {
		slog.Error("Upsert holiday validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	saved, err := h.holidayService.Upsert(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Upsert holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday saved successfully", toHolidayResponse(saved))
}

// List implements HolidayHandler. Year defaults to the current year.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	listReq := holiday.ListHolidaysRequest{Year: queryInt(r, "year")}
	if listReq.Year == 0 {
		listReq.Year = time.Now().Year()
	}

	if err := listReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holidays, err := h.holidayService.ListByYear(r.Context(), listReq.Year)
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, item := range holidays {
		items = append(items, toHolidayResponse(item))
	}

	response.Success(w, items)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Date:      h.Date.Format(timeutil.DateLayout),
		Name:      h.Name,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.Format(time.RFC3339),
	}
}
