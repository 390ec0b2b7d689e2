package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/jobs"
)

// MirrorWorkHourInsert mirrors a ledger entry to the database.
const MirrorWorkHourInsert = "workhour.insert"

// AddWorkHourRequest records hours worked by one professional on one date.
type AddWorkHourRequest struct {
	ProfessionalID   int     `json:"professional_id" validate:"required"`
	Date             string  `json:"date" validate:"required"`
	Hours            float64 `json:"hours" validate:"required,gt=0"`
	IsAdministrative bool    `json:"is_administrative"`
}

// BatchAddWorkHoursRequest records several entries at once.
type BatchAddWorkHoursRequest struct {
	Items []AddWorkHourRequest `json:"items" validate:"required,min=1,dive"`
}

// BatchAddWorkHoursResult summarises a batch ledger pass.
type BatchAddWorkHoursResult struct {
	Created []models.WorkHourEntry `json:"created"`
	Skipped int                    `json:"skipped"`
}

// WorkHourService keeps the append-only work-hour ledger. Entries
// denormalize the professional's name at write time, same as sessions.
type WorkHourService struct {
	mu      sync.Mutex
	entries []models.WorkHourEntry

	registry  registryProvider
	mirror    sessionMirror
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWorkHourService instantiates WorkHourService. mirror may be nil.
func NewWorkHourService(initial []models.WorkHourEntry, registry registryProvider, mirror sessionMirror, validate *validator.Validate, logger *zap.Logger) *WorkHourService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	entries := make([]models.WorkHourEntry, len(initial))
	copy(entries, initial)
	return &WorkHourService{
		entries:   entries,
		registry:  registry,
		mirror:    mirror,
		validator: validate,
		logger:    logger,
	}
}

// Add appends one ledger entry.
func (s *WorkHourService) Add(ctx context.Context, req AddWorkHourRequest) (*models.WorkHourEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work hour payload")
	}

	entry, err := s.buildEntry(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry.ID = nextEntryID(s.entries)
	s.entries = append(s.entries[:len(s.entries):len(s.entries)], *entry)
	s.mu.Unlock()

	s.mirrorEntry(*entry)
	return entry, nil
}

// BatchAdd appends several ledger entries in one pass. Entries that fail
// to resolve are skipped rather than aborting the pass.
func (s *WorkHourService) BatchAdd(ctx context.Context, req BatchAddWorkHoursRequest) (*BatchAddWorkHoursResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work hour batch payload")
	}

	result := &BatchAddWorkHoursResult{Created: []models.WorkHourEntry{}}

	s.mu.Lock()
	working := s.entries[:len(s.entries):len(s.entries)]
	for _, item := range req.Items {
		entry, err := s.buildEntry(item)
		if err != nil {
			result.Skipped++
			continue
		}
		entry.ID = nextEntryID(working)
		working = append(working, *entry)
		result.Created = append(result.Created, *entry)
	}
	s.entries = working
	s.mu.Unlock()

	for _, entry := range result.Created {
		s.mirrorEntry(entry)
	}
	return result, nil
}

// List returns ledger entries, optionally narrowed to a professional
// and/or a date.
func (s *WorkHourService) List(ctx context.Context, professionalID int, date models.Day) ([]models.WorkHourEntry, error) {
	s.mu.Lock()
	entries := s.entries
	s.mu.Unlock()

	out := make([]models.WorkHourEntry, 0, len(entries))
	for _, entry := range entries {
		if professionalID != 0 && entry.ProfessionalID != professionalID {
			continue
		}
		if date != "" && entry.Date != date {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// Summary totals hours per professional over the day, week or month
// around the given date. Weeks run Monday to Sunday, same as the calendar.
func (s *WorkHourService) Summary(ctx context.Context, view models.ViewType, current time.Time) ([]models.WorkHourSummary, error) {
	s.mu.Lock()
	entries := s.entries
	s.mu.Unlock()

	rng := schedule.ComputeDateRange(current, view)
	from := models.DayOf(rng.Start)
	to := models.DayOf(rng.End)

	byProfessional := make(map[int]*models.WorkHourSummary)
	for _, entry := range entries {
		if entry.Date < from || entry.Date > to {
			continue
		}
		sum, ok := byProfessional[entry.ProfessionalID]
		if !ok {
			sum = &models.WorkHourSummary{
				ProfessionalID:   entry.ProfessionalID,
				ProfessionalName: entry.ProfessionalName,
			}
			byProfessional[entry.ProfessionalID] = sum
		}
		sum.TotalHours += entry.Hours
		if entry.IsAdministrative {
			sum.AdministrativeHours += entry.Hours
		}
	}

	out := make([]models.WorkHourSummary, 0, len(byProfessional))
	for _, sum := range byProfessional {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProfessionalID < out[j].ProfessionalID })
	return out, nil
}

// Export renders the work-hour report. The report pipeline has no
// implementation yet; callers receive a typed 501.
func (s *WorkHourService) Export(ctx context.Context, format string) ([]byte, error) {
	return nil, appErrors.Clone(appErrors.ErrNotImplemented, "work hour report export is not implemented")
}

func (s *WorkHourService) buildEntry(req AddWorkHourRequest) (*models.WorkHourEntry, error) {
	day, err := models.ParseDay(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be formatted YYYY-MM-DD")
	}

	professional, ok := s.registry.Snapshot().FindProfessional(req.ProfessionalID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professional not found")
	}

	return &models.WorkHourEntry{
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.DisplayName(),
		Date:             day,
		Hours:            req.Hours,
		IsAdministrative: req.IsAdministrative,
	}, nil
}

func (s *WorkHourService) mirrorEntry(entry models.WorkHourEntry) {
	if s.mirror == nil {
		return
	}
	job := jobs.Job{ID: uuid.NewString(), Type: MirrorWorkHourInsert, Payload: entry}
	if err := s.mirror.Enqueue(job); err != nil {
		s.logger.Warn("failed to enqueue work hour mirror job",
			zap.Int("entry_id", entry.ID),
			zap.Error(err),
		)
	}
}

func nextEntryID(entries []models.WorkHourEntry) int {
	next := 1
	for _, entry := range entries {
		if entry.ID >= next {
			next = entry.ID + 1
		}
	}
	return next
}
