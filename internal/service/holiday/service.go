package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/holiday"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
)

type Service interface {
	Upsert(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.Holiday, error)
	ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	holidayRepo holiday.Repository
}

func NewService(holidayRepo holiday.Repository) Service {
	return &serviceImpl{holidayRepo: holidayRepo}
}

// Upsert implements Service. Re-adding an existing date replaces its name.
func (s *serviceImpl) Upsert(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.Holiday, error) {
	date, err := time.ParseInLocation(timeutil.DateLayout, req.Date, time.UTC)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	return s.holidayRepo.Upsert(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
	})
}

// ListByYear implements Service.
func (s *serviceImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.holidayRepo.ListByYear(ctx, year)
}

// Delete implements Service.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
