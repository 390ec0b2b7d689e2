package service

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/jobs"
)

// Mirror job types for the write-behind session persistence queue.
const (
	MirrorQueueName     = "session-mirror"
	MirrorSessionInsert = "session.insert"
	MirrorSessionUpdate = "session.update"
	MirrorSessionDelete = "session.delete"
)

type registryProvider interface {
	Snapshot() schedule.Registry
}

type sessionMirror interface {
	Enqueue(job jobs.Job) error
}

type cacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CreateSessionRequest describes the payload for scheduling one session.
// The three ids stay strings: an empty or dangling selection is a domain
// rejection (incomplete selection), not a malformed payload.
type CreateSessionRequest struct {
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	PatientID      string `json:"patient_id"`
	ProfessionalID string `json:"professional_id"`
	HorseID        string `json:"horse_id"`
}

// UpdateSessionRequest rewrites an existing session in place.
type UpdateSessionRequest struct {
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	PatientID      string `json:"patient_id"`
	ProfessionalID string `json:"professional_id"`
	HorseID        string `json:"horse_id"`
}

// BatchSessionItem is one row of a bulk scheduling request.
type BatchSessionItem struct {
	Time           string `json:"time" validate:"required"`
	PatientID      string `json:"patient_id"`
	ProfessionalID string `json:"professional_id"`
	HorseID        string `json:"horse_id"`
}

// BatchCreateSessionsRequest schedules several sessions on one date.
type BatchCreateSessionsRequest struct {
	Date  string             `json:"date" validate:"required"`
	Items []BatchSessionItem `json:"items" validate:"required,min=1,dive"`
}

// BatchCreateSessionsResult summarises a batch pass.
type BatchCreateSessionsResult struct {
	Created []models.Session `json:"created"`
	Skipped int              `json:"skipped"`
}

// ScheduleService coordinates session scheduling. The in-memory store is
// authoritative; the mutex makes validate-then-append atomic so two
// requests cannot both pass validation against the same snapshot.
type ScheduleService struct {
	mu    sync.Mutex
	store *schedule.Store

	registry      registryProvider
	horseDailyCap int
	mirror        sessionMirror
	cache         cacheInvalidator
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewScheduleService instantiates ScheduleService. mirror, cache and
// metrics may be nil; those concerns are then skipped.
func NewScheduleService(store *schedule.Store, registry registryProvider, horseDailyCap int, mirror sessionMirror, cache cacheInvalidator, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		store:         store,
		registry:      registry,
		horseDailyCap: horseDailyCap,
		mirror:        mirror,
		cache:         cache,
		metrics:       metrics,
		validator:     validate,
		logger:        logger,
	}
}

// List returns sessions matching the filter, ordered as stored.
func (s *ScheduleService) List(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	sessions := s.Sessions()
	out := make([]models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if filter.Matches(sess) {
			out = append(out, sess)
		}
	}
	return out, nil
}

// Get returns one session by id.
func (s *ScheduleService) Get(ctx context.Context, id int) (*models.Session, error) {
	s.mu.Lock()
	sess, ok := s.store.Find(id)
	s.mu.Unlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	return &sess, nil
}

// Sessions returns the current store snapshot.
func (s *ScheduleService) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Sessions()
}

// Create validates and appends a new session.
func (s *ScheduleService) Create(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	cand, err := s.buildCandidate(req.Date, req.Time, req.PatientID, req.ProfessionalID, req.HorseID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sessions := s.store.Sessions()
	reg := s.registry.Snapshot()
	if err := schedule.Validate(reg, sessions, cand, s.horseDailyCap, 0); err != nil {
		s.mu.Unlock()
		return nil, mapScheduleError(err)
	}
	sess := schedule.BuildSession(reg, sessions, cand, 0)
	if sess == nil {
		s.mu.Unlock()
		return nil, appErrors.ErrIncompleteSelection
	}
	s.store.Append(*sess)
	count := s.store.Len()
	s.mu.Unlock()

	s.afterMutation(ctx, MirrorSessionInsert, *sess, count)
	return sess, nil
}

// Update re-validates and replaces an existing session, excluding the
// session itself from conflict checks.
func (s *ScheduleService) Update(ctx context.Context, id int, req UpdateSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	cand, err := s.buildCandidate(req.Date, req.Time, req.PatientID, req.ProfessionalID, req.HorseID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if _, ok := s.store.Find(id); !ok {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	sessions := s.store.Sessions()
	reg := s.registry.Snapshot()
	if err := schedule.Validate(reg, sessions, cand, s.horseDailyCap, id); err != nil {
		s.mu.Unlock()
		return nil, mapScheduleError(err)
	}
	sess := schedule.BuildSession(reg, sessions, cand, id)
	if sess == nil {
		s.mu.Unlock()
		return nil, appErrors.ErrIncompleteSelection
	}
	s.store.Replace(id, *sess)
	count := s.store.Len()
	s.mu.Unlock()

	s.afterMutation(ctx, MirrorSessionUpdate, *sess, count)
	return sess, nil
}

// Delete removes a session from the calendar.
func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	sess, ok := s.store.Find(id)
	if !ok {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "session not found")
	}
	s.store.Remove(id)
	count := s.store.Len()
	s.mu.Unlock()

	s.afterMutation(ctx, MirrorSessionDelete, sess, count)
	return nil
}

// BatchCreate schedules several same-day sessions in one pass. Every entry
// runs through the full validator; entries that fail are skipped and the
// rest proceed.
func (s *ScheduleService) BatchCreate(ctx context.Context, req BatchCreateSessionsRequest) (*BatchCreateSessionsResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}
	day, err := models.ParseDay(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be formatted YYYY-MM-DD")
	}

	skippedTimes := 0
	entries := make([]schedule.BatchEntry, 0, len(req.Items))
	for _, item := range req.Items {
		if !schedule.IsSlotTime(item.Time) {
			skippedTimes++
			continue
		}
		entries = append(entries, schedule.BatchEntry{
			PatientID:      item.PatientID,
			ProfessionalID: item.ProfessionalID,
			HorseID:        item.HorseID,
			Time:           item.Time,
		})
	}

	s.mu.Lock()
	sessions := s.store.Sessions()
	reg := s.registry.Snapshot()
	result := schedule.BatchAdd(reg, sessions, day, entries, s.horseDailyCap)
	for _, sess := range result.Created {
		s.store.Append(sess)
	}
	count := s.store.Len()
	s.mu.Unlock()

	for _, sess := range result.Created {
		s.afterMutation(ctx, MirrorSessionInsert, sess, count)
	}
	s.logger.Info("batch scheduling pass finished",
		zap.String("date", string(day)),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", result.Skipped+skippedTimes),
	)

	created := result.Created
	if created == nil {
		created = []models.Session{}
	}
	return &BatchCreateSessionsResult{Created: created, Skipped: result.Skipped + skippedTimes}, nil
}

func (s *ScheduleService) buildCandidate(date, timeSlot, patientID, professionalID, horseID string) (schedule.Candidate, error) {
	day, err := models.ParseDay(date)
	if err != nil {
		return schedule.Candidate{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be formatted YYYY-MM-DD")
	}
	if !schedule.IsSlotTime(timeSlot) {
		return schedule.Candidate{}, appErrors.Clone(appErrors.ErrValidation, "time must be one of the clinic's hourly slots")
	}
	return schedule.Candidate{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		HorseID:        horseID,
		Date:           day,
		Time:           timeSlot,
	}, nil
}

// afterMutation handles the side channels of a committed store change:
// session count gauge, write-behind database mirror, projection cache
// invalidation. Failures here are logged, never surfaced; the store has
// already moved on.
func (s *ScheduleService) afterMutation(ctx context.Context, op string, sess models.Session, count int) {
	s.metrics.SetSessionCount(count)

	if s.mirror != nil {
		job := jobs.Job{ID: uuid.NewString(), Type: op, Payload: sess}
		if err := s.mirror.Enqueue(job); err != nil {
			s.logger.Warn("failed to enqueue session mirror job",
				zap.String("op", op),
				zap.Int("session_id", sess.ID),
				zap.Error(err),
			)
		}
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "calendar:*"); err != nil {
			s.logger.Warn("failed to invalidate calendar cache", zap.Error(err))
		}
	}
}

func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrIncompleteSelection):
		return appErrors.ErrIncompleteSelection
	case errors.Is(err, schedule.ErrHorseUnavailable):
		return appErrors.ErrHorseUnavailable
	case errors.Is(err, schedule.ErrHorseCapacityExceeded):
		return appErrors.ErrHorseCapacityExceeded
	case errors.Is(err, schedule.ErrProfessionalConflict):
		return appErrors.ErrProfessionalConflict
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "session validation failed")
	}
}
