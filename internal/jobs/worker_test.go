package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-translate/internal/bulk"
	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/scheduler"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

type stubTranslator struct {
	report bulk.Report
	err    error
	calls  []string
}

func (s *stubTranslator) TranslateRecord(_ context.Context, table string, id uuid.UUID, _ []string) (bulk.Report, error) {
	s.calls = append(s.calls, table+":"+id.String())
	if s.err != nil {
		return bulk.Report{}, s.err
	}
	report := s.report
	report.ID = id
	return report, nil
}

func TestWorkerProcessesBulkJob(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sched := scheduler.NewInMemory(scheduler.WithClock(func() time.Time { return now }))
	translator := &stubTranslator{report: bulk.Report{FieldsTranslated: 2, LanguagesCount: 3, Status: i18n.StatusComplete}}
	audit := NewInMemoryAuditRecorder()
	worker := NewWorker(sched, translator,
		WithAuditRecorder(audit),
		WithClock(func() time.Time { return now }),
	)

	ctx := context.Background()
	recordID := uuid.New()
	job, err := EnqueueBulk(ctx, sched, "info_pages", recordID, []string{"title"}, now.Add(-time.Minute))
	if err != nil {
		t.Fatalf("EnqueueBulk() error = %v", err)
	}

	if err := worker.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(translator.calls) != 1 || translator.calls[0] != "info_pages:"+recordID.String() {
		t.Fatalf("translator calls = %v", translator.calls)
	}
	got, err := sched.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != interfaces.JobStatusCompleted {
		t.Fatalf("job status = %q, want completed", got.Status)
	}

	events := audit.Events()
	if len(events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(events))
	}
	if events[0].Action != "translate" || events[0].EntityType != "info_pages" {
		t.Fatalf("audit event = %+v", events[0])
	}
	if events[0].Metadata["fields_translated"] != 2 {
		t.Fatalf("audit metadata = %v", events[0].Metadata)
	}
}

func TestWorkerMarksFailedJobsForRetry(t *testing.T) {
	now := time.Now()
	sched := scheduler.NewInMemory()
	translator := &stubTranslator{err: errors.New("store unavailable")}
	worker := NewWorker(sched, translator, WithClock(func() time.Time { return now }))

	ctx := context.Background()
	job, err := EnqueueBulk(ctx, sched, "deck_pages", uuid.New(), nil, now.Add(-time.Second))
	if err != nil {
		t.Fatalf("EnqueueBulk() error = %v", err)
	}

	if err := worker.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	got, err := sched.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != interfaces.JobStatusPending || got.Attempt != 1 {
		t.Fatalf("job after failure = %+v", got)
	}
	if got.LastError != "store unavailable" {
		t.Fatalf("LastError = %q", got.LastError)
	}
}

func TestWorkerAuditFailureDoesNotFailJob(t *testing.T) {
	now := time.Now()
	sched := scheduler.NewInMemory()
	translator := &stubTranslator{report: bulk.Report{Status: i18n.StatusComplete}}
	audit := NewInMemoryAuditRecorder()
	audit.Fail(errors.New("sink offline"))
	worker := NewWorker(sched, translator,
		WithAuditRecorder(audit),
		WithClock(func() time.Time { return now }),
	)

	ctx := context.Background()
	job, err := EnqueueBulk(ctx, sched, "tournaments", uuid.New(), nil, now.Add(-time.Second))
	if err != nil {
		t.Fatalf("EnqueueBulk() error = %v", err)
	}

	if err := worker.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	got, _ := sched.Get(ctx, job.ID)
	if got.Status != interfaces.JobStatusCompleted {
		t.Fatalf("job status = %q, audit failure must not fail the job", got.Status)
	}
}

func TestWorkerSkipsUnknownJobTypes(t *testing.T) {
	now := time.Now()
	sched := scheduler.NewInMemory()
	translator := &stubTranslator{}
	worker := NewWorker(sched, translator, WithClock(func() time.Time { return now }))

	ctx := context.Background()
	job, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Type:  "cms.content.publish",
		RunAt: now.Add(-time.Second),
	})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	if err := worker.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(translator.calls) != 0 {
		t.Fatalf("translator calls = %v, want none", translator.calls)
	}
	got, _ := sched.Get(ctx, job.ID)
	if got.Status != interfaces.JobStatusCompleted {
		t.Fatalf("unknown job status = %q, want completed", got.Status)
	}
}

type stubPruner struct {
	removed   int
	olderThan time.Time
}

func (p *stubPruner) Prune(_ context.Context, olderThan time.Time) (int, error) {
	p.olderThan = olderThan
	return p.removed, nil
}

func TestWorkerProcessesCachePrune(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sched := scheduler.NewInMemory()
	pruner := &stubPruner{removed: 7}
	audit := NewInMemoryAuditRecorder()
	worker := NewWorker(sched, &stubTranslator{},
		WithCachePruner(pruner, 30*24*time.Hour),
		WithAuditRecorder(audit),
		WithClock(func() time.Time { return now }),
	)

	ctx := context.Background()
	if _, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.CachePruneJobKey(),
		Type:  scheduler.JobTypeCachePrune,
		RunAt: now.Add(-time.Second),
	}); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	if err := worker.Process(ctx); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	want := now.Add(-30 * 24 * time.Hour)
	if !pruner.olderThan.Equal(want) {
		t.Fatalf("prune cutoff = %v, want %v", pruner.olderThan, want)
	}
	events := audit.Events()
	if len(events) != 1 || events[0].Metadata["removed"] != 7 {
		t.Fatalf("audit events = %+v", events)
	}
}
