package queue

import (
	"context"
	"log"
	"time"

	"pixbridge/internal/domain/entities"
)

const (
	defaultPollInterval = 5 * time.Second
	maxAttempts         = 5
)

// ConfirmationHandler consumes one dequeued job. The queue may redeliver a
// job, so handlers must tolerate re-processing the same tuple.

type ConfirmationHandler interface {
	HandleConfirmation(ctx context.Context, job entities.ConfirmationJob) error
}

// jobStore is the dequeue side of the confirmation queue.

type jobStore interface {
	NextPending(ctx context.Context) (entities.ConfirmationJob, bool, error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string) error
	Reschedule(ctx context.Context, jobID string, attempts int, notBefore time.Time) error
}

// Worker polls the confirmation queue and drives jobs through the handler.
// Failed jobs are rescheduled with a growing delay and abandoned after
// maxAttempts.

type Worker struct {
	store    jobStore
	handler  ConfirmationHandler
	interval time.Duration
}

func NewWorker(store jobStore, handler ConfirmationHandler) *Worker {
	return &Worker{store: store, handler: handler, interval: defaultPollInterval}
}

// Start runs the poll loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		log.Printf("[confirmation][worker] started poll_interval=%s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Printf("[confirmation][worker] stopped")
				return
			case <-ticker.C:
				w.processOne(ctx)
			}
		}
	}()
}

func (w *Worker) processOne(ctx context.Context) {
	job, ok, err := w.store.NextPending(ctx)
	if err != nil {
		log.Printf("[confirmation][worker] dequeue failed err=%v", err)
		return
	}
	if !ok {
		return
	}

	log.Printf("[confirmation][worker] processing job_id=%s transaction_id=%s kind=%s gateway_type=%s attempts=%d",
		job.ID, job.TransactionID, job.TransactionKind, job.GatewayType, job.Attempts)

	if err := w.handler.HandleConfirmation(ctx, job); err != nil {
		log.Printf("[confirmation][worker] handler failed job_id=%s err=%v", job.ID, err)
		if job.Attempts >= maxAttempts {
			if err := w.store.MarkFailed(ctx, job.ID); err != nil {
				log.Printf("[confirmation][worker] mark failed errored job_id=%s err=%v", job.ID, err)
			}
			log.Printf("[confirmation][worker] job abandoned after max attempts job_id=%s", job.ID)
			return
		}
		backoff := time.Duration(job.Attempts*10+10) * time.Second
		if err := w.store.Reschedule(ctx, job.ID, job.Attempts+1, time.Now().UTC().Add(backoff)); err != nil {
			log.Printf("[confirmation][worker] reschedule failed job_id=%s err=%v", job.ID, err)
		}
		return
	}

	if err := w.store.MarkCompleted(ctx, job.ID); err != nil {
		log.Printf("[confirmation][worker] mark completed failed job_id=%s err=%v", job.ID, err)
	}
	log.Printf("[confirmation][worker] job completed job_id=%s", job.ID)
}
