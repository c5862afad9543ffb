package ports

// CafeMetrics records the outcome of settled operations for the ops
// endpoint. Implementations must be safe for concurrent use.
type CafeMetrics interface {
	RecordActivity(kind string)
	RecordOrder()
	RecordConflict()
	RecordFailure()
}
