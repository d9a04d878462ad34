package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Progression State
const (
	ErrMsgFailedToEncodeState     = "failed to encode progression state"
	ErrMsgFailedToDecodeState     = "failed to decode progression state"
	ErrMsgFailedToInsertState     = "failed to insert progression state"
	ErrMsgFailedToLoadState       = "failed to load progression state"
	ErrMsgFailedToSaveState       = "failed to save progression state"
	ErrMsgFailedToCheckStateExist = "failed to check progression state exists"
	ErrMsgFailedToListUsers       = "failed to list progression users"
	ErrMsgFailedToScanUserID      = "failed to scan user id"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
	LogMsgStateConflict    = "Progression state version conflict"
)
