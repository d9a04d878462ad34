package event

import "time"

// EventSchemaVersion is stamped on every published envelope
const EventSchemaVersion = "1.0"

// Retry queue
const (
	// RetryQueueBufferSize bounds the events waiting for another attempt; overflow is dead-lettered
	RetryQueueBufferSize = 1000

	// MaxRetryDelay caps the exponential backoff between attempts
	MaxRetryDelay = time.Minute
)

// MetadataKeyUserID carries the affected user on every progression event
const MetadataKeyUserID = "user_id"

// DeadLetterFilePermissions is the mode used when creating the dead-letter file
const DeadLetterFilePermissions = 0644

const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"
)

const (
	ErrMsgHandlersFailed      = "event handlers failed for"
	ErrMsgNilPayload          = "event payload is nil"
	ErrMsgDecodePayload       = "failed to decode event payload"
	ErrMsgOpenDeadLetter      = "failed to open dead-letter file"
	ErrMsgMalformedDeadLetter = "malformed dead-letter line"
)

// CalculateRetryDelay doubles baseDelay for each attempt after the first, up to MaxRetryDelay.
// With a 2s base: 2s, 4s, 8s, 16s, 32s, 1m, 1m...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	if delay > MaxRetryDelay {
		return MaxRetryDelay
	}
	return delay
}
