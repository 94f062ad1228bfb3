package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"werbench/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestRecordRunRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := history.Run{
		ID:            uuid.NewString(),
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		AudioDir:      "/data/audios",
		TranscriptDir: "/data/transcripts",
		Engine:        "whisperx",
		Records:       2,
		MeanWER:       0.15,
	}
	results := []history.Result{
		{Session: "S1", Participant: "P1", Record: "item1", WER: 0.1},
		{Session: "S1", Participant: "P1", Record: "item2", WER: 0.2},
	}

	if err := store.RecordRun(ctx, run, results); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Engine != "whisperx" || got.Records != 2 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, run.CreatedAt)
	}

	loaded, err := store.RunResults(ctx, run.ID)
	if err != nil {
		t.Fatalf("RunResults: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Record != "item1" || loaded[1].WER != 0.2 {
		t.Fatalf("unexpected results: %+v", loaded)
	}
}

func TestListRunsNewestFirstWithLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := history.Run{
			ID:        uuid.NewString(),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Engine:    "whisperx",
		}
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Fatalf("expected newest first, got %v then %v", runs[0].CreatedAt, runs[1].CreatedAt)
	}
}

func TestRecordRunRequiresID(t *testing.T) {
	store := openStore(t)
	if err := store.RecordRun(context.Background(), history.Run{}, nil); err == nil {
		t.Fatal("expected error for missing run id")
	}
}

func TestRecordRunDuplicateIDFails(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	run := history.Run{ID: "run-1", Engine: "whisperx"}
	if err := store.RecordRun(ctx, run, nil); err != nil {
		t.Fatalf("first RecordRun: %v", err)
	}
	if err := store.RecordRun(ctx, run, nil); err == nil {
		t.Fatal("expected duplicate run id to fail")
	}
}
