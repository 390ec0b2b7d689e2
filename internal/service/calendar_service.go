package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/export"
)

type sessionSource interface {
	Sessions() []models.Session
}

type calendarCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CalendarDay is one rendered calendar cell.
type CalendarDay struct {
	Date           models.Day       `json:"date"`
	IsCurrentMonth bool             `json:"is_current_month"`
	Sessions       []models.Session `json:"sessions"`
}

// CalendarView is a fully rendered projection for one view and focus date.
type CalendarView struct {
	View        models.ViewType `json:"view"`
	Current     models.Day      `json:"current"`
	DisplayText string          `json:"display_text"`
	Days        []CalendarDay   `json:"days"`
}

// TimeSlotView is the day agenda broken into the clinic's hourly slots.
type TimeSlotView struct {
	Date  models.Day        `json:"date"`
	Slots []models.TimeSlot `json:"slots"`
}

// CalendarService renders read-side projections over the session store.
// Projections are pure over a snapshot, so they cache well; any session
// mutation invalidates the whole calendar: prefix.
type CalendarService struct {
	source   sessionSource
	cache    calendarCache
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCalendarService instantiates CalendarService. cache may be nil to
// disable projection caching.
func NewCalendarService(source sessionSource, cache calendarCache, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CalendarService{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

// View renders the calendar for the given view type and focus date.
func (s *CalendarService) View(ctx context.Context, view models.ViewType, current time.Time) (*CalendarView, error) {
	key := fmt.Sprintf("calendar:view:%s:%s", view, models.DayOf(current))
	var cached CalendarView
	if s.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	rng := schedule.ComputeDateRange(current, view)
	cells := schedule.GenerateCalendarDays(rng, view, current, s.source.Sessions())

	days := make([]CalendarDay, 0, len(cells))
	for _, cell := range cells {
		days = append(days, CalendarDay{
			Date:           models.DayOf(cell.Date),
			IsCurrentMonth: cell.IsCurrentMonth,
			Sessions:       cell.Sessions,
		})
	}

	result := &CalendarView{
		View:        view,
		Current:     models.DayOf(current),
		DisplayText: rng.DisplayText,
		Days:        days,
	}
	s.storeCache(ctx, key, result)
	return result, nil
}

// Navigate moves the focus date one step in the given direction and
// renders the resulting view.
func (s *CalendarService) Navigate(ctx context.Context, view models.ViewType, current time.Time, rawDirection string) (*CalendarView, error) {
	dir, err := schedule.ParseDirection(rawDirection)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "direction must be prev or next")
	}
	next := schedule.Navigate(current, view, dir)
	return s.View(ctx, view, next)
}

// Click resolves a day-cell click: in month view it drills down to the
// day view, otherwise it refocuses the current view.
func (s *CalendarService) Click(ctx context.Context, view models.ViewType, clicked time.Time) (*CalendarView, error) {
	next, nextView := schedule.ResolveDayClick(view, clicked)
	return s.View(ctx, nextView, next)
}

// TimeSlots renders the hourly agenda for one date.
func (s *CalendarService) TimeSlots(ctx context.Context, current time.Time) (*TimeSlotView, error) {
	key := fmt.Sprintf("calendar:slots:%s", models.DayOf(current))
	var cached TimeSlotView
	if s.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	result := &TimeSlotView{
		Date:  models.DayOf(current),
		Slots: schedule.GenerateTimeSlots(current, s.source.Sessions()),
	}
	s.storeCache(ctx, key, result)
	return result, nil
}

// AgendaDataset flattens one day's agenda into a tabular dataset for the
// CSV and PDF exporters.
func (s *CalendarService) AgendaDataset(ctx context.Context, current time.Time) (export.Dataset, string, error) {
	slots, err := s.TimeSlots(ctx, current)
	if err != nil {
		return export.Dataset{}, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Time", "Patient", "Professional", "Horse"},
	}
	for _, slot := range slots.Slots {
		for _, sess := range slot.Sessions {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Time":         slot.Time,
				"Patient":      sess.PatientName,
				"Professional": sess.ProfessionalName,
				"Horse":        sess.HorseName,
			})
		}
	}

	title := fmt.Sprintf("Daily agenda %s", models.DayOf(current))
	return dataset, title, nil
}

func (s *CalendarService) lookupCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		s.metrics.IncCacheHit()
		return true
	}
	s.metrics.IncCacheMiss()
	if appErrors.FromError(err).Code != appErrors.ErrCacheMiss.Code {
		s.logger.Warn("calendar cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *CalendarService) storeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("calendar cache write failed", zap.String("key", key), zap.Error(err))
	}
}
