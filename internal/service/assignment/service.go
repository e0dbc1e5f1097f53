package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/carelink/homecare-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type Service interface {
	Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.Assignment, error)
	GetByID(ctx context.Context, id string) (assignment.Assignment, error)
	List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, int64, error)
	ListForWorker(ctx context.Context, workerID string) ([]assignment.Assignment, error)
	Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.Assignment, error)
	Deactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	db             *database.DB
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
	clientRepo     client.Repository
}

func NewService(db *database.DB, assignmentRepo assignment.Repository, workerRepo worker.Repository, clientRepo client.Repository) Service {
	return &serviceImpl{
		db:             db,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		clientRepo:     clientRepo,
	}
}

// Create implements Service. The candidate schedule is checked against the
// worker's other active assignments before anything is written; any overlap
// aborts the create with the full conflict list.
func (s *serviceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.Assignment, error) {
	workerData, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if !workerData.IsActive {
		return assignment.Assignment{}, worker.ErrWorkerInactive
	}

	clientData, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if !clientData.IsActive {
		return assignment.Assignment{}, client.ErrClientInactive
	}

	candidate := assignment.Assignment{
		WorkerID:  req.WorkerID,
		ClientID:  req.ClientID,
		TimeSlots: slotsFromRequests(req.TimeSlots),
	}
	candidate.StartDate, candidate.EndDate, err = parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return assignment.Assignment{}, err
	}

	if err := s.checkConflicts(ctx, candidate, ""); err != nil {
		return assignment.Assignment{}, err
	}

	var created assignment.Assignment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		created, err = s.assignmentRepo.Create(txCtx, candidate)
		return err
	})
	if err != nil {
		return assignment.Assignment{}, err
	}

	created.WorkerName = strPtr(workerData.FullName())
	created.ClientName = strPtr(clientData.FullName())

	return created, nil
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// List implements Service.
func (s *serviceImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, int64, error) {
	return s.assignmentRepo.List(ctx, filter)
}

// ListForWorker implements Service. Backs the worker app's schedule view.
func (s *serviceImpl) ListForWorker(ctx context.Context, workerID string) ([]assignment.Assignment, error) {
	return s.assignmentRepo.ListActiveByWorker(ctx, workerID, "")
}

// Update implements Service. The post-update schedule (window plus slots,
// replaced wholesale when provided) must pass the same conflict check as a
// create; the assignment itself is excluded from the comparison set.
func (s *serviceImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.Assignment, error) {
	current, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return assignment.Assignment{}, err
	}

	candidate := current
	if req.StartDate != nil {
		candidate.StartDate, err = time.ParseInLocation(timeutil.DateLayout, *req.StartDate, time.UTC)
		if err != nil {
			return assignment.Assignment{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
	}
	if req.ClearEnd {
		candidate.EndDate = nil
	} else if req.EndDate != nil {
		endDate, err := time.ParseInLocation(timeutil.DateLayout, *req.EndDate, time.UTC)
		if err != nil {
			return assignment.Assignment{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		candidate.EndDate = &endDate
	}
	if candidate.EndDate != nil && candidate.EndDate.Before(candidate.StartDate) {
		return assignment.Assignment{}, assignment.ErrInvalidWindow
	}
	if req.TimeSlots != nil {
		candidate.TimeSlots = slotsFromRequests(req.TimeSlots)
	}

	// A deactivated assignment cannot conflict with anything.
	stillActive := current.IsActive
	if req.IsActive != nil {
		stillActive = *req.IsActive
	}
	if stillActive {
		if err := s.checkConflicts(ctx, candidate, req.ID); err != nil {
			return assignment.Assignment{}, err
		}
	}

	var updated assignment.Assignment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.TimeSlots != nil {
			if err := s.assignmentRepo.ReplaceTimeSlots(txCtx, req.ID, candidate.TimeSlots); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.assignmentRepo.UpdateWindow(txCtx, req.ID, candidate.StartDate, candidate.EndDate, req.IsActive)
		return err
	})
	if err != nil {
		return assignment.Assignment{}, err
	}

	return updated, nil
}

// Deactivate implements Service. Soft: visits and reports against the
// assignment stay queryable.
func (s *serviceImpl) Deactivate(ctx context.Context, id string) error {
	return s.assignmentRepo.Deactivate(ctx, id)
}

func (s *serviceImpl) checkConflicts(ctx context.Context, candidate assignment.Assignment, excludeID string) error {
	existing, err := s.assignmentRepo.ListActiveByWorker(ctx, candidate.WorkerID, excludeID)
	if err != nil {
		return err
	}

	conflicts, err := FindConflicts(existing, candidate)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &assignment.ConflictError{Conflicts: conflicts}
	}

	return nil
}

func slotsFromRequests(reqs []assignment.TimeSlotRequest) []assignment.TimeSlot {
	slots := make([]assignment.TimeSlot, 0, len(reqs))
	for _, r := range reqs {
		slots = append(slots, assignment.TimeSlot{
			DayOfWeek: *r.DayOfWeek,
			DayType:   timeutil.DayType(r.DayType),
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return slots
}

func parseWindow(startDate string, endDate *string) (time.Time, *time.Time, error) {
	start, err := time.ParseInLocation(timeutil.DateLayout, startDate, time.UTC)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to parse start_date: %w", err)
	}

	if endDate == nil {
		return start, nil, nil
	}

	end, err := time.ParseInLocation(timeutil.DateLayout, *endDate, time.UTC)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to parse end_date: %w", err)
	}

	return start, &end, nil
}

func strPtr(s string) *string {
	return &s
}
