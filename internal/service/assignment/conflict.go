package assignment

import (
	"fmt"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
)

// FindConflicts reports every slot pair where the candidate assignment would
// double-book the worker against one of the existing assignments. The caller
// is expected to pass only the worker's active assignments; no filtering by
// worker or active flag happens here.
//
// Two slots conflict when the assignments' validity windows intersect, the
// slots share day-of-week and day-type, and their time ranges strictly
// overlap. Slots that merely touch (one ending exactly when the other
// starts) do not conflict. Descriptions come back in detection order.
func FindConflicts(existing []assignment.Assignment, candidate assignment.Assignment) ([]string, error) {
	var conflicts []string

	for _, ex := range existing {
		// Validity windows must intersect before any time-of-day check;
		// an absent end date counts as unbounded.
		if !ex.OverlapsRange(candidate.StartDate, candidate.EndDate) {
			continue
		}

		for _, exSlot := range ex.TimeSlots {
			for _, candSlot := range candidate.TimeSlots {
				if exSlot.DayOfWeek != candSlot.DayOfWeek || exSlot.DayType != candSlot.DayType {
					continue
				}

				overlap, err := slotsOverlap(exSlot, candSlot)
				if err != nil {
					return nil, err
				}
				if !overlap {
					continue
				}

				conflicts = append(conflicts, fmt.Sprintf(
					"%s (%s): existing %s-%s overlaps proposed %s-%s (client %s)",
					timeutil.DayName(exSlot.DayOfWeek),
					exSlot.DayType,
					exSlot.StartTime, exSlot.EndTime,
					candSlot.StartTime, candSlot.EndTime,
					ex.ClientID,
				))
			}
		}
	}

	return conflicts, nil
}

// slotsOverlap applies the strict interval test: a.start < b.end AND
// a.end > b.start.
func slotsOverlap(a, b assignment.TimeSlot) (bool, error) {
	aStart, err := timeutil.MinutesOfDay(a.StartTime)
	if err != nil {
		return false, err
	}
	aEnd, err := timeutil.MinutesOfDay(a.EndTime)
	if err != nil {
		return false, err
	}
	bStart, err := timeutil.MinutesOfDay(b.StartTime)
	if err != nil {
		return false, err
	}
	bEnd, err := timeutil.MinutesOfDay(b.EndTime)
	if err != nil {
		return false, err
	}

	return aStart < bEnd && aEnd > bStart, nil
}
