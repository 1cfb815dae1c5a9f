package service

import (
	"fmt"
	"strings"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"
	"workforce-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ScheduleService struct {
	shiftRepo  repository.ShiftAssignmentRepository
	dayOffRepo repository.DayOffRequestRepository
	logger     *logrus.Logger
}

func NewScheduleService(
	shiftRepo repository.ShiftAssignmentRepository,
	dayOffRepo repository.DayOffRequestRepository,
) *ScheduleService {
	return &ScheduleService{
		shiftRepo:  shiftRepo,
		dayOffRepo: dayOffRepo,
		logger:     logrus.New(),
	}
}

// CombineMarkers merges per-date shift assignments and day-off requests into
// a single per-date marker map for calendar rendering.
//
// Merge order matters: dates with shifts are stamped as scheduled first, then
// request-derived fields are overlaid unconditionally. When a date carries
// both, the final status and selection colors come from the request while the
// shift's marked flag, dot color, job list and hours stay attached underneath.
//
// A request with an unrecognized status produces no marker at all. The write
// path rejects such statuses, so this is a defensive drop for data that
// predates validation.
func CombineMarkers(
	shiftsByDate map[string][]models.ShiftAssignment,
	requestsByDate map[string]models.DayOffRequest,
) map[string]models.CalendarMarker {
	combined := make(map[string]models.CalendarMarker, len(shiftsByDate)+len(requestsByDate))

	for date, shifts := range shiftsByDate {
		var hours float64
		for i := range shifts {
			hours += shifts[i].Hours()
		}
		combined[date] = models.CalendarMarker{
			Marked:        true,
			SelectedColor: models.ColorScheduled,
			Status:        models.MarkerScheduled,
			Hours:         hours,
			Jobs:          shifts,
		}
	}

	for date, request := range requestsByDate {
		color, ok := models.StatusColor(request.Status)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"date":   date,
				"status": request.Status,
			}).Warn("Dropping day-off request with unrecognized status")
			continue
		}
		status, _ := models.MarkerStatus(request.Status)

		// Requests own selection, the selection colors and the status; the
		// marked flag and dot color stay whatever the shift pass stamped.
		marker := combined[date]
		marker.Selected = true
		marker.SelectedColor = color
		marker.TextColor = color
		marker.Status = status
		combined[date] = marker
	}

	return combined
}

// HoursForPeriod sums marker hours across all dates whose year-month prefix
// matches the target period, skipping disabled markers.
func HoursForPeriod(markers map[string]models.CalendarMarker, yearMonth string) float64 {
	var total float64
	prefix := yearMonth + "-"
	for date, marker := range markers {
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		if marker.Disabled {
			continue
		}
		total += marker.Hours
	}
	return total
}

// MonthMarkers fetches a worker's shifts and day-off requests for one month
// and combines them. The two source fetches have no ordering dependency, so
// they run concurrently.
func (s *ScheduleService) MonthMarkers(userID uint, month string) (map[string]models.CalendarMarker, error) {
	var (
		shifts   []models.ShiftAssignment
		requests []models.DayOffRequest
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.GetByUserAndMonth(userID, month)
		if err != nil {
			return fmt.Errorf("fetch shifts for %s: %w", month, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		requests, err = s.dayOffRepo.GetByUserAndMonth(userID, month)
		if err != nil {
			return fmt.Errorf("fetch day-off requests for %s: %w", month, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load month markers")
		return nil, err
	}

	shiftsByDate := make(map[string][]models.ShiftAssignment)
	for _, shift := range shifts {
		shiftsByDate[shift.Date] = append(shiftsByDate[shift.Date], shift)
	}

	requestsByDate := make(map[string]models.DayOffRequest, len(requests))
	for _, request := range requests {
		requestsByDate[request.Date] = request
	}

	return CombineMarkers(shiftsByDate, requestsByDate), nil
}

// ScheduledHours returns the total scheduled hours for a worker's month.
func (s *ScheduleService) ScheduledHours(userID uint, month string) (float64, error) {
	markers, err := s.MonthMarkers(userID, month)
	if err != nil {
		return 0, err
	}
	return HoursForPeriod(markers, month), nil
}

// AssignShift creates a shift assignment on behalf of an administrator.
func (s *ScheduleService) AssignShift(userID uint, date, start, end string, pay float64, location, assignedBy string) (*models.ShiftAssignment, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return nil, err
	}

	shift := &models.ShiftAssignment{
		UserID:     userID,
		Date:       date,
		ShiftStart: start,
		ShiftEnd:   end,
		Pay:        pay,
		Location:   location,
		AssignedBy: assignedBy,
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift: start %s must be before end %s on %s", start, end, date)
	}

	if err := s.shiftRepo.Create(shift); err != nil {
		s.logger.WithError(err).Error("Failed to assign shift")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"start":   start,
		"end":     end,
	}).Info("Shift assigned")

	return shift, nil
}

// RemoveShifts deletes every shift on the given date for a worker and
// returns how many records were removed.
func (s *ScheduleService) RemoveShifts(userID uint, date string) (int64, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return 0, err
	}
	return s.shiftRepo.DeleteByUserAndDate(userID, date)
}

// ShiftsForDate returns a worker's shifts on one date.
func (s *ScheduleService) ShiftsForDate(userID uint, date string) ([]models.ShiftAssignment, error) {
	return s.shiftRepo.GetByUserAndDate(userID, date)
}
