package visit

import (
	"context"
	"errors"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/domain/visit"
)

type Service interface {
	CheckIn(ctx context.Context, req visit.CheckInRequest) (visit.Visit, error)
	CheckOut(ctx context.Context, req visit.CheckOutRequest) (visit.Visit, error)
	UpdateNote(ctx context.Context, req visit.UpdateNoteRequest) (visit.Visit, error)
	GetByID(ctx context.Context, id string) (visit.Visit, error)
	List(ctx context.Context, filter visit.VisitFilter) ([]visit.Visit, int64, error)
}

type serviceImpl struct {
	visitRepo      visit.Repository
	assignmentRepo assignment.Repository

	// now is swappable in tests.
	now func() time.Time
}

func NewService(visitRepo visit.Repository, assignmentRepo assignment.Repository) Service {
	return &serviceImpl{
		visitRepo:      visitRepo,
		assignmentRepo: assignmentRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn implements Service. One open visit per worker, assignment and day;
// checking in again before checking out is rejected.
func (s *serviceImpl) CheckIn(ctx context.Context, req visit.CheckInRequest) (visit.Visit, error) {
	assignmentData, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return visit.Visit{}, err
	}
	if assignmentData.WorkerID != req.WorkerID {
		return visit.Visit{}, visit.ErrUnauthorized
	}
	if !assignmentData.IsActive {
		return visit.Visit{}, assignment.ErrAssignmentInactive
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !assignmentData.CoversDate(today) {
		return visit.Visit{}, assignment.ErrAssignmentInactive
	}

	_, err = s.visitRepo.GetOpenVisit(ctx, req.WorkerID, req.AssignmentID, today)
	if err == nil {
		return visit.Visit{}, visit.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, visit.ErrVisitNotFound) {
		return visit.Visit{}, err
	}

	return s.visitRepo.Create(ctx, visit.Visit{
		AssignmentID:     req.AssignmentID,
		WorkerID:         req.WorkerID,
		Date:             today,
		CheckInAt:        &now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
	})
}

// CheckOut implements Service. Worked minutes are derived from the recorded
// timestamps, never taken from the request.
func (s *serviceImpl) CheckOut(ctx context.Context, req visit.CheckOutRequest) (visit.Visit, error) {
	visitData, err := s.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		return visit.Visit{}, err
	}
	if visitData.WorkerID != req.WorkerID {
		return visit.Visit{}, visit.ErrUnauthorized
	}
	if visitData.CheckInAt == nil {
		return visit.Visit{}, visit.ErrNotCheckedIn
	}
	if visitData.CheckOutAt != nil {
		return visit.Visit{}, visit.ErrAlreadyCheckedOut
	}

	now := s.now()
	workedMinutes := int(now.Sub(*visitData.CheckInAt).Minutes())
	if workedMinutes < 0 {
		workedMinutes = 0
	}

	return s.visitRepo.SetCheckOut(ctx, req.VisitID, now, req.Latitude, req.Longitude, req.Note, workedMinutes)
}

// UpdateNote implements Service.
func (s *serviceImpl) UpdateNote(ctx context.Context, req visit.UpdateNoteRequest) (visit.Visit, error) {
	visitData, err := s.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		return visit.Visit{}, err
	}
	if req.WorkerID != "" && visitData.WorkerID != req.WorkerID {
		return visit.Visit{}, visit.ErrUnauthorized
	}

	return s.visitRepo.UpdateNote(ctx, req.VisitID, req.Note)
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	return s.visitRepo.GetByID(ctx, id)
}

// List implements Service.
func (s *serviceImpl) List(ctx context.Context, filter visit.VisitFilter) ([]visit.Visit, int64, error) {
	return s.visitRepo.List(ctx, filter)
}
