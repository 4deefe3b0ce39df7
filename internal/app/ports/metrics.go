package ports

// ProgressMetrics counts the outcomes of progression operations.
type ProgressMetrics interface {
	RecordSuccess(operation string)
	RecordConflict()
	RecordFailure()
}
