package ports

import "kappaverse/internal/domain/kappa"

type SimMetrics interface {
	RecordTick(eventCount int)
	RecordActionSuccess(action string)
	RecordActionFailure(action string, code kappa.FailureCode)
	RecordConflict()
}
