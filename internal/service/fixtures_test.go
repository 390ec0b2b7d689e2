package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/schedule"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/jobs"
)

type stubRegistry struct {
	reg schedule.Registry
}

func (s *stubRegistry) Snapshot() schedule.Registry {
	return s.reg
}

func testRegistry() *stubRegistry {
	return &stubRegistry{reg: schedule.Registry{
		Patients: []models.Patient{
			{ID: 1, Name: "Juan", LastName: "Pérez"},
			{ID: 2, Name: "María", LastName: "González"},
			{ID: 3, Name: "Diego", LastName: "Martínez"},
		},
		Professionals: []models.Professional{
			{ID: 1, Name: "Ana", LastName: "Silva"},
			{ID: 2, Name: "Carlos", LastName: "Rodríguez"},
		},
		Horses: []models.Horse{
			{ID: 1, Name: "Luna", Availability: true},
			{ID: 2, Name: "Trueno", Availability: true},
			{ID: 3, Name: "Estrella", Availability: true},
			{ID: 4, Name: "Relámpago", Availability: false},
		},
	}}
}

type mirrorStub struct {
	enqueued []jobs.Job
	err      error
}

func (m *mirrorStub) Enqueue(job jobs.Job) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, job)
	return nil
}

type cacheInvalidatorStub struct {
	patterns []string
}

func (c *cacheInvalidatorStub) DeleteByPattern(ctx context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

// cacheStub is a JSON-over-map stand-in for the Redis cache repository.
type cacheStub struct {
	data   map[string][]byte
	gets   int
	hits   int
	stores int
}

func newCacheStub() *cacheStub {
	return &cacheStub{data: make(map[string][]byte)}
}

func (c *cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.gets++
	raw, ok := c.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(raw, dest)
}

func (c *cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.stores++
	return nil
}

func testSession(id int, date models.Day, timeSlot string, patientID, professionalID, horseID int) models.Session {
	return models.Session{
		ID:             id,
		Date:           date,
		Time:           timeSlot,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		HorseID:        horseID,
	}
}
