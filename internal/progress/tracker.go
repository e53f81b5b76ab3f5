// internal/progress/tracker.go
package progress

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"wedding-back/internal/models"
)

var ErrUnknownProcess = errors.New("unknown process id")

// DefaultTTL bounds how long a completed or failed entry stays readable by
// pollers before it is pruned.
const DefaultTTL = time.Hour

type entry struct {
	job        models.JobProgress
	finishedAt time.Time
}

// Tracker is the process-wide registry of batch-job progress, keyed by
// process id. It is in-memory only: it does not survive a restart and is
// invisible to any other process instance.
type Tracker struct {
	mu   sync.RWMutex
	jobs map[string]*entry
	ttl  time.Duration
}

func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{jobs: make(map[string]*entry), ttl: ttl}
}

// Start registers a running job and returns its process id, generating one
// when the caller supplied none.
func (t *Tracker) Start(processID string, totalImages int) string {
	if processID == "" {
		processID = uuid.New().String()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	t.jobs[processID] = &entry{job: models.JobProgress{
		ProcessID:        processID,
		TotalImages:      totalImages,
		Status:           models.JobRunning,
		CompressionStats: make(map[string]models.ImageOutcome),
	}}
	return processID
}

// Update records the outcome of one processed item. The job completes
// automatically once every item has been processed.
func (t *Tracker) Update(processID, currentImage string, outcome models.ImageOutcome) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.jobs[processID]
	if !ok {
		return ErrUnknownProcess
	}
	e.job.ProcessedImages++
	e.job.CurrentImage = currentImage
	e.job.CompressionStats[currentImage] = outcome
	if e.job.ProcessedImages >= e.job.TotalImages {
		e.job.Status = models.JobCompleted
		e.finishedAt = time.Now()
	}
	return nil
}

func (t *Tracker) Complete(processID string) error {
	return t.finish(processID, models.JobCompleted)
}

func (t *Tracker) Fail(processID string) error {
	return t.finish(processID, models.JobFailed)
}

func (t *Tracker) finish(processID, status string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.jobs[processID]
	if !ok {
		return ErrUnknownProcess
	}
	e.job.Status = status
	e.finishedAt = time.Now()
	return nil
}

// Get returns a copy of the job state so pollers never observe a map being
// mutated by the worker goroutine.
func (t *Tracker) Get(processID string) (models.JobProgress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.jobs[processID]
	if !ok {
		return models.JobProgress{}, false
	}
	job := e.job
	stats := make(map[string]models.ImageOutcome, len(e.job.CompressionStats))
	for k, v := range e.job.CompressionStats {
		stats[k] = v
	}
	job.CompressionStats = stats
	return job, true
}

// ListAll returns the known process ids, for diagnostics.
func (t *Tracker) ListAll() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	ids := make([]string, 0, len(t.jobs))
	for id := range t.jobs {
		ids = append(ids, id)
	}
	return ids
}

// pruneLocked drops terminal entries past their TTL. Called lazily from
// Start and ListAll; there is no background janitor.
func (t *Tracker) pruneLocked() {
	cutoff := time.Now().Add(-t.ttl)
	for id, e := range t.jobs {
		if e.finishedAt.IsZero() {
			continue
		}
		if e.finishedAt.Before(cutoff) {
			delete(t.jobs, id)
		}
	}
}
