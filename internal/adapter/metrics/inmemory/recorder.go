package inmemory

import "sync"

type Snapshot struct {
	ActivityTotal uint64            `json:"activity_total"`
	OrderTotal    uint64            `json:"order_total"`
	ConflictTotal uint64            `json:"conflict_total"`
	FailureTotal  uint64            `json:"failure_total"`
	ByActivity    map[string]uint64 `json:"by_activity"`
}

// Recorder keeps operational counters for the /ops/kpi endpoint.
type Recorder struct {
	mu         sync.Mutex
	orders     uint64
	conflicts  uint64
	failures   uint64
	byActivity map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byActivity: map[string]uint64{},
	}
}

func (r *Recorder) RecordActivity(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byActivity[kind]++
}

func (r *Recorder) RecordOrder() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		OrderTotal:    r.orders,
		ConflictTotal: r.conflicts,
		FailureTotal:  r.failures,
		ByActivity:    make(map[string]uint64, len(r.byActivity)),
	}
	for k, v := range r.byActivity {
		out.ByActivity[k] = v
		out.ActivityTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
