package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/pkg/jobs"
)

type sessionWriter interface {
	Insert(ctx context.Context, session models.Session) error
	Update(ctx context.Context, session models.Session) error
	Delete(ctx context.Context, id int) error
}

type workHourWriter interface {
	Insert(ctx context.Context, entry models.WorkHourEntry) error
}

// NewMirrorHandler builds the job handler that replays in-memory store
// mutations into PostgreSQL. The queue retries transient failures; a
// payload of the wrong shape is a programming error and fails permanently.
func NewMirrorHandler(sessions sessionWriter, workHours workHourWriter, logger *zap.Logger) jobs.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, job jobs.Job) error {
		switch job.Type {
		case MirrorSessionInsert, MirrorSessionUpdate, MirrorSessionDelete:
			session, ok := job.Payload.(models.Session)
			if !ok {
				logger.Error("session mirror job has unexpected payload", zap.String("job_id", job.ID), zap.String("type", job.Type))
				return nil
			}
			return mirrorSession(ctx, sessions, job.Type, session)
		case MirrorWorkHourInsert:
			entry, ok := job.Payload.(models.WorkHourEntry)
			if !ok {
				logger.Error("work hour mirror job has unexpected payload", zap.String("job_id", job.ID))
				return nil
			}
			return workHours.Insert(ctx, entry)
		default:
			logger.Error("unknown mirror job type", zap.String("job_id", job.ID), zap.String("type", job.Type))
			return nil
		}
	}
}

func mirrorSession(ctx context.Context, sessions sessionWriter, op string, session models.Session) error {
	switch op {
	case MirrorSessionInsert:
		return sessions.Insert(ctx, session)
	case MirrorSessionUpdate:
		return sessions.Update(ctx, session)
	case MirrorSessionDelete:
		return sessions.Delete(ctx, session.ID)
	default:
		return fmt.Errorf("unsupported session mirror op %s", op)
	}
}
