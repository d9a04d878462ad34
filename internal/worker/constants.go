package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgWorkerPoolClosed = "Worker pool stopped, job dropped"
)

// ============================================================================
// Log Messages - Rebalance Job
// ============================================================================

// Log messages for the daily rebalance
const (
	LogMsgRebalanceStarting  = "Daily rebalance starting"
	LogMsgRebalanceCompleted = "Daily rebalance completed"
	LogMsgRebalanceFailed    = "Daily rebalance failed"
	LogMsgRebalanceUserError = "Rebalance failed for user"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultRebalanceConcurrency bounds how many users are rebalanced at once
	DefaultRebalanceConcurrency = 4

	// DefaultJobTimeout caps a single pooled job
	DefaultJobTimeout = 30 * time.Minute
)

// ErrMsgPoolStopped is returned by Enqueue after Stop
const ErrMsgPoolStopped = "worker pool stopped"
