package repository

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/shared"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, job shared.NotificationJob) error {
	status := job.Status
	if status == "" {
		status = shared.JobStatusQueued
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, attempts, status, last_error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		job.Kind, job.Topic, job.Payload, job.RunAt, job.Attempts, status, job.LastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
