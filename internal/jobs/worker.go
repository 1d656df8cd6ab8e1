package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-translate/internal/bulk"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/internal/scheduler"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// BulkTranslator runs the whole-record translation a job asks for.
type BulkTranslator interface {
	TranslateRecord(ctx context.Context, table string, id uuid.UUID, fields []string) (bulk.Report, error)
}

// Worker drains due translation jobs from the scheduler. Each job is
// processed at most once per cycle; failures are handed back to the
// scheduler for retry accounting.
type Worker struct {
	scheduler  interfaces.Scheduler
	translator BulkTranslator
	cache      Pruner
	audit      AuditRecorder
	logger     interfaces.Logger
	now        func() time.Time
	batchSize  int
	pruneAge   time.Duration
}

// Pruner drops stale translation cache entries.
type Pruner interface {
	Prune(ctx context.Context, olderThan time.Time) (int, error)
}

// Option customizes the worker.
type Option func(*Worker)

// WithAuditRecorder attaches a best-effort audit sink.
func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(w *Worker) {
		w.audit = recorder
	}
}

// WithClock overrides the internal clock, used mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(w *Worker) {
		if clock != nil {
			w.now = clock
		}
	}
}

// WithBatchSize caps how many due jobs one Process cycle drains.
func WithBatchSize(size int) Option {
	return func(w *Worker) {
		if size > 0 {
			w.batchSize = size
		}
	}
}

// WithLogger overrides the worker logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithCachePruner enables handling of cache prune jobs; entries older than
// the supplied age are dropped.
func WithCachePruner(cache Pruner, olderThan time.Duration) Option {
	return func(w *Worker) {
		w.cache = cache
		w.pruneAge = olderThan
	}
}

// NewWorker constructs a worker over a scheduler and a bulk translator.
func NewWorker(sched interfaces.Scheduler, translator BulkTranslator, opts ...Option) *Worker {
	w := &Worker{
		scheduler:  sched,
		translator: translator,
		logger:     logging.NoOp(),
		now:        time.Now,
		batchSize:  50,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Process drains one batch of due jobs. Intended to be called from a host
// ticker loop.
func (w *Worker) Process(ctx context.Context) error {
	if w.scheduler == nil {
		return errors.New("jobs: scheduler is nil")
	}
	deadline := w.now()
	due, err := w.scheduler.ListDue(ctx, deadline, w.batchSize)
	if err != nil {
		return err
	}
	for _, job := range due {
		if job == nil {
			continue
		}
		if err := w.handleJob(ctx, job, deadline); err != nil {
			w.logger.Warn("job failed", "job_id", job.ID, "job_type", job.Type, "error", err)
			_ = w.scheduler.MarkFailed(ctx, job.ID, err)
			continue
		}
		_ = w.scheduler.MarkDone(ctx, job.ID)
	}
	return nil
}

func (w *Worker) handleJob(ctx context.Context, job *interfaces.Job, now time.Time) error {
	switch job.Type {
	case scheduler.JobTypeBulkTranslate:
		return w.processBulkTranslate(ctx, job, now)
	case scheduler.JobTypeCachePrune:
		return w.processCachePrune(ctx, job, now)
	default:
		return nil
	}
}

func (w *Worker) processBulkTranslate(ctx context.Context, job *interfaces.Job, now time.Time) error {
	if w.translator == nil {
		return errors.New("jobs: bulk translator is nil")
	}
	table, id, fields, err := parseBulkPayload(job.Payload)
	if err != nil {
		return err
	}
	report, err := w.translator.TranslateRecord(ctx, table, id, fields)
	if err != nil {
		return err
	}
	w.recordAudit(ctx, AuditEvent{
		EntityType: table,
		EntityID:   id.String(),
		Action:     "translate",
		OccurredAt: now,
		Metadata: map[string]any{
			"job_id":            job.ID,
			"job_type":          job.Type,
			"attempt":           job.Attempt,
			"fields_translated": report.FieldsTranslated,
			"languages_count":   report.LanguagesCount,
			"status":            string(report.Status),
		},
	})
	return nil
}

func (w *Worker) processCachePrune(ctx context.Context, job *interfaces.Job, now time.Time) error {
	if w.cache == nil || w.pruneAge <= 0 {
		return nil
	}
	removed, err := w.cache.Prune(ctx, now.Add(-w.pruneAge))
	if err != nil {
		return err
	}
	w.recordAudit(ctx, AuditEvent{
		EntityType: "translation_cache",
		EntityID:   "prune",
		Action:     "prune",
		OccurredAt: now,
		Metadata: map[string]any{
			"job_id":  job.ID,
			"removed": removed,
		},
	})
	return nil
}

func (w *Worker) recordAudit(ctx context.Context, event AuditEvent) {
	if w.audit == nil {
		return
	}
	if err := w.audit.Record(ctx, event); err != nil {
		w.logger.Warn("audit record failed", "entity", event.EntityType, "error", err)
	}
}

func parseBulkPayload(payload map[string]any) (string, uuid.UUID, []string, error) {
	if payload == nil {
		return "", uuid.Nil, nil, fmt.Errorf("jobs: missing payload")
	}
	table, ok := payload["table"].(string)
	if !ok || table == "" {
		return "", uuid.Nil, nil, fmt.Errorf("jobs: payload missing table")
	}
	rawID, ok := payload["record_id"].(string)
	if !ok {
		return "", uuid.Nil, nil, fmt.Errorf("jobs: payload missing record_id")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, nil, err
	}
	var fields []string
	switch raw := payload["fields"].(type) {
	case nil:
	case []string:
		fields = raw
	case []any:
		for _, item := range raw {
			if name, ok := item.(string); ok {
				fields = append(fields, name)
			}
		}
	default:
		return "", uuid.Nil, nil, fmt.Errorf("jobs: invalid fields payload")
	}
	return table, id, fields, nil
}

// BulkPayload builds the payload EnqueueBulk and hosts use to schedule a
// record translation.
func BulkPayload(table string, id uuid.UUID, fields []string) map[string]any {
	payload := map[string]any{
		"table":     table,
		"record_id": id.String(),
	}
	if len(fields) > 0 {
		payload["fields"] = fields
	}
	return payload
}

// EnqueueBulk schedules a deduplicated bulk translation job for a record.
func EnqueueBulk(ctx context.Context, sched interfaces.Scheduler, table string, id uuid.UUID, fields []string, runAt time.Time) (*interfaces.Job, error) {
	if sched == nil {
		return nil, errors.New("jobs: scheduler is nil")
	}
	return sched.Enqueue(ctx, interfaces.JobSpec{
		Key:     scheduler.BulkTranslateJobKey(table, id),
		Type:    scheduler.JobTypeBulkTranslate,
		RunAt:   runAt,
		Payload: BulkPayload(table, id, fields),
	})
}
