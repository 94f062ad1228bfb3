package services_test

import (
	"context"
	"testing"

	"werbench/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-123")
	id, ok := services.RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("expected run-123, got %q (ok=%v)", id, ok)
	}
}

func TestRunIDMissing(t *testing.T) {
	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on fresh context")
	}
	if _, ok := services.RunIDFromContext(nil); ok {
		t.Fatal("expected no run id on nil context")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	ctx := services.WithRecord(context.Background(), "item1")
	name, ok := services.RecordFromContext(ctx)
	if !ok || name != "item1" {
		t.Fatalf("expected item1, got %q (ok=%v)", name, ok)
	}
}

func TestEmptyValuesNotStamped(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "")
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("empty run id should not be stamped")
	}
	ctx = services.WithRecord(context.Background(), "")
	if _, ok := services.RecordFromContext(ctx); ok {
		t.Fatal("empty record should not be stamped")
	}
}
