package analysisstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/marcusbuffett/uciengine/pkg/analysis"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewWithClient(rdb, time.Minute)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(t *testing.T) analysis.Info {
	t.Helper()
	t.Setenv("ALLOW_UNKNOWN_INFO_KEY", "false")
	rec := analysis.NewInfo()
	if err := rec.Parse("info depth 14 score cp -32 nodes 123456 time 950 pv e7e5 g1f3"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return rec
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	rec := testRecord(t)

	if err := s.Save(ctx, "abc-123", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(ctx, "abc-123")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got != rec {
		t.Fatalf("loaded record differs:\n got %+v\nwant %+v", got, rec)
	}
}

func TestLoadUnknownID(t *testing.T) {
	s := newTestStore(t)
	if _, ok, err := s.Load(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
}

func TestLoadRawIsSnapshotJSON(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	rec := testRecord(t)

	if err := s.Save(ctx, "raw-1", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, ok, err := s.LoadRaw(ctx, "raw-1")
	if err != nil || !ok {
		t.Fatalf("LoadRaw: ok=%v err=%v", ok, err)
	}
	back, err := analysis.InfoFromJSON(raw)
	if err != nil {
		t.Fatalf("InfoFromJSON: %v", err)
	}
	if back != rec {
		t.Fatal("raw snapshot does not decode to the saved record")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "gone", testRecord(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Load(ctx, "gone"); ok {
		t.Fatal("record survived Delete")
	}
}

func TestNewFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	s, err := New(fmt.Sprintf("redis://%s/0", mr.Addr()), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.Save(context.Background(), "x", analysis.NewInfo()); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
