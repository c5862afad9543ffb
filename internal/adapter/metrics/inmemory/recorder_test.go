package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordActivity("feed")
	r.RecordActivity("feed")
	r.RecordActivity("play")
	r.RecordOrder()
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.ActivityTotal != 3 {
		t.Fatalf("expected activity total 3, got %d", s.ActivityTotal)
	}
	if s.ByActivity["feed"] != 2 {
		t.Fatalf("expected feed count 2, got %d", s.ByActivity["feed"])
	}
	if s.OrderTotal != 1 {
		t.Fatalf("expected order total 1, got %d", s.OrderTotal)
	}
	if s.ConflictTotal != 1 {
		t.Fatalf("expected conflict 1, got %d", s.ConflictTotal)
	}
	if s.FailureTotal != 1 {
		t.Fatalf("expected failure 1, got %d", s.FailureTotal)
	}
}
