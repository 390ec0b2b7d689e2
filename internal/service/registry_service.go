package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
)

type patientRepository interface {
	List(ctx context.Context) ([]models.Patient, error)
}

type professionalRepository interface {
	List(ctx context.Context) ([]models.Professional, error)
}

type horseRepository interface {
	List(ctx context.Context) ([]models.Horse, error)
	SetAvailability(ctx context.Context, id int, available bool) error
}

// RegistryService holds the in-memory rosters the scheduler resolves
// against. Rosters load once at startup and change rarely; the only write
// path is flipping a horse's availability.
type RegistryService struct {
	mu            sync.RWMutex
	patients      []models.Patient
	professionals []models.Professional
	horses        []models.Horse

	patientRepo      patientRepository
	professionalRepo professionalRepository
	horseRepo        horseRepository
	logger           *zap.Logger
}

// NewRegistryService instantiates RegistryService.
func NewRegistryService(patients patientRepository, professionals professionalRepository, horses horseRepository, logger *zap.Logger) *RegistryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryService{
		patientRepo:      patients,
		professionalRepo: professionals,
		horseRepo:        horses,
		logger:           logger,
	}
}

// Load fetches all three rosters from the database.
func (s *RegistryService) Load(ctx context.Context) error {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load patients")
	}
	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professionals")
	}
	horses, err := s.horseRepo.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load horses")
	}

	s.mu.Lock()
	s.patients = patients
	s.professionals = professionals
	s.horses = horses
	s.mu.Unlock()

	s.logger.Info("registry loaded",
		zap.Int("patients", len(patients)),
		zap.Int("professionals", len(professionals)),
		zap.Int("horses", len(horses)),
	)
	return nil
}

// Snapshot returns a point-in-time copy of the rosters for validation.
func (s *RegistryService) Snapshot() schedule.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg := schedule.Registry{
		Patients:      make([]models.Patient, len(s.patients)),
		Professionals: make([]models.Professional, len(s.professionals)),
		Horses:        make([]models.Horse, len(s.horses)),
	}
	copy(reg.Patients, s.patients)
	copy(reg.Professionals, s.professionals)
	copy(reg.Horses, s.horses)
	return reg
}

// Patients returns the patient roster.
func (s *RegistryService) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// Professionals returns the staff roster.
func (s *RegistryService) Professionals() []models.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

// Horses returns the horse roster.
func (s *RegistryService) Horses() []models.Horse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Horse, len(s.horses))
	copy(out, s.horses)
	return out
}

// SetHorseAvailability persists and applies an availability flip. The
// in-memory roster only changes after the database accepts the update.
func (s *RegistryService) SetHorseAvailability(ctx context.Context, id int, available bool) (*models.Horse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, h := range s.horses {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "horse not found")
	}

	if err := s.horseRepo.SetAvailability(ctx, id, available); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update horse availability")
	}

	horses := make([]models.Horse, len(s.horses))
	copy(horses, s.horses)
	horses[idx].Availability = available
	s.horses = horses

	horse := horses[idx]
	s.logger.Info("horse availability updated", zap.Int("horse_id", id), zap.Bool("available", available))
	return &horse, nil
}
