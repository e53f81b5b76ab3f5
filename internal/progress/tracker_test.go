// internal/progress/tracker_test.go
package progress

import (
	"errors"
	"testing"
	"time"

	"wedding-back/internal/models"
)

func TestZeroTotalReportsZeroPercent(t *testing.T) {
	tr := NewTracker(0)
	id := tr.Start("", 0)

	job, ok := tr.Get(id)
	if !ok {
		t.Fatal("job should exist")
	}
	if job.Percent() != 0 {
		t.Errorf("expected 0%%, got %d", job.Percent())
	}
}

func TestUpdateAutoCompletes(t *testing.T) {
	tr := NewTracker(0)
	id := tr.Start("proc-1", 2)

	if err := tr.Update(id, "img-1", models.ImageOutcome{Success: true}); err != nil {
		t.Fatal(err)
	}
	job, _ := tr.Get(id)
	if job.Status != models.JobRunning {
		t.Errorf("expected running after partial progress, got %s", job.Status)
	}
	if job.Percent() != 50 {
		t.Errorf("expected 50%%, got %d", job.Percent())
	}

	if err := tr.Update(id, "img-2", models.ImageOutcome{Error: "boom"}); err != nil {
		t.Fatal(err)
	}
	job, _ = tr.Get(id)
	if job.Status != models.JobCompleted {
		t.Errorf("expected completed, got %s", job.Status)
	}
	if job.Percent() != 100 {
		t.Errorf("expected 100%%, got %d", job.Percent())
	}
	if job.CompressionStats["img-2"].Error != "boom" {
		t.Errorf("per-item outcome not recorded: %+v", job.CompressionStats)
	}
	if job.CurrentImage != "img-2" {
		t.Errorf("current image not updated: %s", job.CurrentImage)
	}
}

func TestUnknownProcess(t *testing.T) {
	tr := NewTracker(0)

	if _, ok := tr.Get("nope"); ok {
		t.Error("unknown id must not resolve")
	}
	if err := tr.Update("nope", "x", models.ImageOutcome{}); !errors.Is(err, ErrUnknownProcess) {
		t.Errorf("expected ErrUnknownProcess, got %v", err)
	}
	if err := tr.Fail("nope"); !errors.Is(err, ErrUnknownProcess) {
		t.Errorf("expected ErrUnknownProcess, got %v", err)
	}
}

func TestTerminalEntriesArePrunedAfterTTL(t *testing.T) {
	tr := NewTracker(time.Millisecond)
	id := tr.Start("", 0)
	if err := tr.Complete(id); err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)
	ids := tr.ListAll()
	for _, got := range ids {
		if got == id {
			t.Error("terminal entry should have been pruned")
		}
	}

	// A running job is never pruned, regardless of age.
	running := tr.Start("", 3)
	time.Sleep(5 * time.Millisecond)
	if _, ok := tr.Get(running); !ok {
		t.Error("running job must survive pruning")
	}
}

func TestGetReturnsACopy(t *testing.T) {
	tr := NewTracker(0)
	id := tr.Start("", 2)
	if err := tr.Update(id, "img-1", models.ImageOutcome{Success: true}); err != nil {
		t.Fatal(err)
	}

	job, _ := tr.Get(id)
	job.CompressionStats["img-1"] = models.ImageOutcome{Error: "mutated"}

	fresh, _ := tr.Get(id)
	if fresh.CompressionStats["img-1"].Error != "" {
		t.Error("Get must return an isolated copy of the stats map")
	}
}
