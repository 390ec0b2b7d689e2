package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
)

type fakePatientRepo struct{ items []models.Patient }

func (f *fakePatientRepo) List(ctx context.Context) ([]models.Patient, error) { return f.items, nil }

type fakeProfessionalRepo struct{ items []models.Professional }

func (f *fakeProfessionalRepo) List(ctx context.Context) ([]models.Professional, error) {
	return f.items, nil
}

type fakeHorseRepo struct {
	items   []models.Horse
	updates map[int]bool
	failSet bool
}

func (f *fakeHorseRepo) List(ctx context.Context) ([]models.Horse, error) { return f.items, nil }

func (f *fakeHorseRepo) SetAvailability(ctx context.Context, id int, available bool) error {
	if f.failSet {
		return assert.AnError
	}
	if f.updates == nil {
		f.updates = make(map[int]bool)
	}
	f.updates[id] = available
	return nil
}

func newTestRegistryService() (*RegistryService, *fakeHorseRepo) {
	reg := testRegistry().reg
	horses := &fakeHorseRepo{items: reg.Horses}
	svc := NewRegistryService(
		&fakePatientRepo{items: reg.Patients},
		&fakeProfessionalRepo{items: reg.Professionals},
		horses,
		nil,
	)
	return svc, horses
}

func TestRegistryServiceLoadAndSnapshot(t *testing.T) {
	svc, _ := newTestRegistryService()
	require.NoError(t, svc.Load(context.Background()))

	snap := svc.Snapshot()
	assert.Len(t, snap.Patients, 3)
	assert.Len(t, snap.Professionals, 2)
	assert.Len(t, snap.Horses, 4)

	// Snapshot copies must not alias the service's state.
	snap.Horses[0].Availability = false
	fresh := svc.Snapshot()
	assert.True(t, fresh.Horses[0].Availability)
}

func TestRegistryServiceSetHorseAvailability(t *testing.T) {
	svc, horses := newTestRegistryService()
	require.NoError(t, svc.Load(context.Background()))

	horse, err := svc.SetHorseAvailability(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, horse.Availability)
	assert.Equal(t, map[int]bool{1: false}, horses.updates)

	snap := svc.Snapshot()
	assert.False(t, snap.Horses[0].Availability)
}

func TestRegistryServiceSetHorseAvailabilityUnknown(t *testing.T) {
	svc, _ := newTestRegistryService()
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.SetHorseAvailability(context.Background(), 99, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRegistryServiceAvailabilityKeptOnRepoFailure(t *testing.T) {
	svc, horses := newTestRegistryService()
	require.NoError(t, svc.Load(context.Background()))
	horses.failSet = true

	_, err := svc.SetHorseAvailability(context.Background(), 1, false)
	require.Error(t, err)

	snap := svc.Snapshot()
	assert.True(t, snap.Horses[0].Availability)
}
