package inmemory

import "sync"

type Snapshot struct {
	Total       uint64            `json:"total"`
	Success     uint64            `json:"success"`
	Conflict    uint64            `json:"conflict"`
	Failure     uint64            `json:"failure"`
	ByOperation map[string]uint64 `json:"by_operation"`
}

// Recorder counts progression operation outcomes for the /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byOp     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(operation string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOp[operation]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Success:     r.success,
		Conflict:    r.conflict,
		Failure:     r.failure,
		Total:       r.success + r.conflict + r.failure,
		ByOperation: make(map[string]uint64, len(r.byOp)),
	}
	for k, v := range r.byOp {
		out.ByOperation[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
