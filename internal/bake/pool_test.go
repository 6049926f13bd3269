package bake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ddcore/internal/config"
	"ddcore/internal/export"
	"ddcore/pkg/color"
	"ddcore/pkg/gradient"
)

func TestMain(m *testing.M) {
	config.SetBakeResolution(32)
	os.Exit(m.Run())
}

func testJob(dir, name string) Job {
	return Job{
		Name: name,
		Gradient: gradient.FromKeys(
			gradient.NewKey(color.Red, 0),
			gradient.NewKey(color.Blue, gradient.MaxPosition),
		),
		Path:    filepath.Join(dir, name+".png"),
		Options: export.StripOptions{Width: 16, Height: 4},
	}
}

func TestAll(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{testJob(dir, "a"), testJob(dir, "b"), testJob(dir, "c")}
	jobs = append(jobs, testJob(dir, "bad"))
	jobs[3].Path = filepath.Join(dir, "bad.unknown")

	results := All(context.Background(), 2, jobs)
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	for i, r := range results[:3] {
		if r.Error != nil {
			t.Errorf("Job %d failed: %v", i, r.Error)
		}
		if r.Name != jobs[i].Name {
			t.Errorf("Expected results in job order, got %s at %d", r.Name, i)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("Expected %s on disk: %v", r.Path, err)
		}
	}
	if results[3].Error == nil {
		t.Errorf("Expected an error for an unknown extension")
	}
}

func TestAllSharedPath(t *testing.T) {
	dir := t.TempDir()
	first := testJob(dir, "first")
	second := testJob(dir, "second")
	second.Path = first.Path

	results := All(context.Background(), 2, []Job{first, second})
	for i, want := range []string{"first", "second"} {
		if results[i].Name != want || results[i].ID != i {
			t.Errorf("Expected %s at %d, got %s (id %d)", want, i, results[i].Name, results[i].ID)
		}
		if results[i].Error != nil {
			t.Errorf("Job %s failed: %v", want, results[i].Error)
		}
	}
}

func TestAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := All(ctx, 1, []Job{testJob(t.TempDir(), "a")})
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}

func TestSubmitJobQueueFull(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 0, 1)
	defer pool.Shutdown()

	dir := t.TempDir()
	if !pool.SubmitJob(testJob(dir, "a")) {
		t.Fatalf("Expected first job to queue")
	}
	if pool.SubmitJob(testJob(dir, "b")) {
		t.Errorf("Expected a full queue to reject the job")
	}
	if pool.GetQueueLength() != 1 {
		t.Errorf("Expected 1 queued job, got %d", pool.GetQueueLength())
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 1, 0)
	pool.Shutdown()

	if pool.SubmitJobBlocking(testJob(t.TempDir(), "a")) {
		t.Errorf("Expected a cancelled pool to refuse jobs")
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	pool := NewWorkerPool(context.Background(), 2, 4)
	results := make(chan Result, 4)
	for _, name := range []string{"a", "b", "c", "d"} {
		job := testJob(dir, name)
		job.ResultChan = results
		if !pool.SubmitJobBlocking(job) {
			t.Fatalf("Failed to submit %s", name)
		}
	}
	pool.Close()

	if len(results) != 4 {
		t.Errorf("Expected every queued job to finish, got %d", len(results))
	}
}
