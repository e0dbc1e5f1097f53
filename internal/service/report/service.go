package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/carelink/homecare-backend-go/internal/domain/holiday"
	"github.com/carelink/homecare-backend-go/internal/domain/report"
	"github.com/carelink/homecare-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type Service interface {
	Generate(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResult, error)
	ExportCSV(ctx context.Context, req report.MonthlyReportRequest) (report.ExportResponse, error)
	ListByPeriod(ctx context.Context, year, month int) ([]report.MonthlyReport, error)
}

type serviceImpl struct {
	assignmentRepo assignment.Repository
	clientRepo     client.Repository
	holidayRepo    holiday.Repository
	reportRepo     report.Repository
	fileStorage    storage.FileStorage
}

func NewService(assignmentRepo assignment.Repository, clientRepo client.Repository, holidayRepo holiday.Repository, reportRepo report.Repository, fileStorage storage.FileStorage) Service {
	return &serviceImpl{
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		holidayRepo:    holidayRepo,
		reportRepo:     reportRepo,
		fileStorage:    fileStorage,
	}
}

// Generate implements Service. The assignment must be active and its
// validity window must touch the requested month; that filter runs in SQL
// before reconciliation. The summary row is persisted on every run,
// replacing an earlier run for the same period.
func (s *serviceImpl) Generate(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResult, error) {
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	assignmentData, err := s.assignmentRepo.GetActiveForMonth(ctx, req.AssignmentID, monthStart, monthEnd)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return report.MonthlyReportResult{}, report.ErrAssignmentNotInMonth
		}
		return report.MonthlyReportResult{}, err
	}

	clientData, err := s.clientRepo.GetByID(ctx, assignmentData.ClientID)
	if err != nil {
		return report.MonthlyReportResult{}, err
	}

	holidays, err := s.holidayRepo.CalendarForRange(ctx, monthStart, monthEnd)
	if err != nil {
		return report.MonthlyReportResult{}, err
	}

	result, err := Reconcile(assignmentData, req.Year, time.Month(req.Month), holidays, clientData.ContractedHoursPerMth.InexactFloat64())
	if err != nil {
		return report.MonthlyReportResult{}, err
	}

	_, err = s.reportRepo.Upsert(ctx, report.MonthlyReport{
		AssignmentID:       result.AssignmentID,
		PeriodMonth:        result.PeriodMonth,
		PeriodYear:         result.PeriodYear,
		AssignedHours:      result.AssignedHours,
		CalculatedHours:    result.CalculatedHours,
		ExcessDeficitHours: result.ExcessDeficitHours,
		WorkingDays:        result.WorkingDays,
		WeekendDays:        result.WeekendDays,
		HolidayDays:        result.HolidayDays,
	})
	if err != nil {
		return report.MonthlyReportResult{}, err
	}

	return result, nil
}

// ExportCSV implements Service. The breakdown goes through the storage sink
// as an opaque file; the response carries only its URL.
func (s *serviceImpl) ExportCSV(ctx context.Context, req report.MonthlyReportRequest) (report.ExportResponse, error) {
	result, err := s.Generate(ctx, req)
	if err != nil {
		return report.ExportResponse{}, err
	}

	var buf bytes.Buffer
	if err := writeCSV(&buf, result); err != nil {
		return report.ExportResponse{}, err
	}

	path := fmt.Sprintf("reports/%d/%02d/%s.csv", req.Year, req.Month, uuid.NewString())
	storedPath, err := s.fileStorage.Save(ctx, &buf, path, "text/csv")
	if err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to store report export: %w", err)
	}

	fileURL, err := s.fileStorage.URL(ctx, storedPath)
	if err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to resolve export url: %w", err)
	}

	return report.ExportResponse{FileURL: fileURL}, nil
}

// ListByPeriod implements Service.
func (s *serviceImpl) ListByPeriod(ctx context.Context, year, month int) ([]report.MonthlyReport, error) {
	return s.reportRepo.ListByPeriod(ctx, year, month)
}

func writeCSV(buf *bytes.Buffer, result report.MonthlyReportResult) error {
	w := csv.NewWriter(buf)

	header := [][]string{
		{"assignment_id", result.AssignmentID},
		{"worker", result.WorkerName},
		{"client", result.ClientName},
		{"period", fmt.Sprintf("%04d-%02d", result.PeriodYear, result.PeriodMonth)},
		{"assigned_hours", formatHours(result.AssignedHours)},
		{"calculated_hours", formatHours(result.CalculatedHours)},
		{"excess_deficit_hours", formatHours(result.ExcessDeficitHours)},
		{"working_days", strconv.Itoa(result.WorkingDays)},
		{"weekend_days", strconv.Itoa(result.WeekendDays)},
		{"holiday_days", strconv.Itoa(result.HolidayDays)},
		{},
		{"date", "day_name", "day_type", "holiday_name", "scheduled_hours"},
	}
	for _, row := range header {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	for _, day := range result.DailyBreakdown {
		holidayName := ""
		if day.HolidayName != nil {
			holidayName = *day.HolidayName
		}
		row := []string{day.Date, day.DayName, day.DayType, holidayName, formatHours(day.ScheduledHours)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
