package inmemory

import (
	"sync"

	"kappaverse/internal/domain/kappa"
)

type Snapshot struct {
	TickTotal      uint64            `json:"tick_total"`
	TickEventTotal uint64            `json:"tick_event_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionFailure  uint64            `json:"action_failure"`
	ActionConflict uint64            `json:"action_conflict"`
	ByAction       map[string]uint64 `json:"by_action"`
	ByFailureCode  map[string]uint64 `json:"by_failure_code"`
}

// Recorder is the in-process KPI sink behind /ops/kpi.
type Recorder struct {
	mu            sync.Mutex
	tickTotal     uint64
	tickEvents    uint64
	success       uint64
	failure       uint64
	conflict      uint64
	byAction      map[string]uint64
	byFailureCode map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:      map[string]uint64{},
		byFailureCode: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(eventCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickTotal++
	if eventCount > 0 {
		r.tickEvents += uint64(eventCount)
	}
}

func (r *Recorder) RecordActionSuccess(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byAction[action]++
}

func (r *Recorder) RecordActionFailure(action string, code kappa.FailureCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byFailureCode[string(code)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	byAction := make(map[string]uint64, len(r.byAction))
	for k, v := range r.byAction {
		byAction[k] = v
	}
	byCode := make(map[string]uint64, len(r.byFailureCode))
	for k, v := range r.byFailureCode {
		byCode[k] = v
	}
	return Snapshot{
		TickTotal:      r.tickTotal,
		TickEventTotal: r.tickEvents,
		ActionSuccess:  r.success,
		ActionFailure:  r.failure,
		ActionConflict: r.conflict,
		ByAction:       byAction,
		ByFailureCode:  byCode,
	}
}

// SnapshotAny satisfies the HTTP adapter's provider interface.
func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
