package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/report"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	reportService "github.com/carelink/homecare-backend-go/internal/service/report"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportService.Service
}

func NewReportHandler(service reportService.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: service}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyReportRequest {
	return report.MonthlyReportRequest{
		AssignmentID: r.URL.Query().Get("assignment_id"),
		Month:        queryInt(r, "month"),
		Year:         queryInt(r, "year"),
	}
}

// Monthly implements ReportHandler. Generates (or regenerates) the monthly
// reconciliation for one assignment and returns the full breakdown.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	reportReq := monthlyRequestFromQuery(r)

	if err := reportReq.Validate(); err != nil {
		slog.Error("Monthly report validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.Generate(r.Context(), reportReq)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	reportReq := monthlyRequestFromQuery(r)

	if err := reportReq.Validate(); err != nil {
		slog.Error("Export report validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	exported, err := h.reportService.ExportCSV(r.Context(), reportReq)
	if err != nil {
		slog.Error("Export report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report exported", "assignment_id", reportReq.AssignmentID, "file_url", exported.FileURL)
	response.Created(w, "Report exported successfully", exported)
}

// ListByPeriod implements ReportHandler. Summaries of every generated report
// for a period; month and year default to the current month.
func (h *ReportHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	reports, err := h.reportService.ListByPeriod(r.Context(), year, month)
	if err != nil {
		slog.Error("List reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]report.MonthlyReportSummary, 0, len(reports))
	for _, item := range reports {
		items = append(items, report.MonthlyReportSummary{
			ID:                 item.ID,
			AssignmentID:       item.AssignmentID,
			PeriodMonth:        item.PeriodMonth,
			PeriodYear:         item.PeriodYear,
			AssignedHours:      item.AssignedHours,
			CalculatedHours:    item.CalculatedHours,
			ExcessDeficitHours: item.ExcessDeficitHours,
			WorkingDays:        item.WorkingDays,
			WeekendDays:        item.WeekendDays,
			HolidayDays:        item.HolidayDays,
			GeneratedAt:        item.GeneratedAt.Format(time.RFC3339),
		})
	}

	response.Success(w, items)
}
