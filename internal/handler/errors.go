package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgStateNotFoundError = "No progression found for this user"
	ErrMsgStateExistsError   = "Progression already exists for this user"
	ErrMsgConflictError      = "Progression was updated concurrently. Please retry."
	ErrMsgUnknownKindError   = "Unknown activity kind"
	ErrMsgUnknownAttrError   = "Unknown crystal attribute"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequests    = "Too many requests. Please try again later."
)

// Health responses
const (
	HealthStatusOK            = "ok"
	HealthStatusUnavailable   = "unavailable"
	HealthMsgDependencyFailed = "dependency check failed"
	CheckNameDatabase         = "database"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgServiceError       = "Service error"
	LogMsgRequestSucceeded   = "Request succeeded"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeResponseFail = "Failed to encode JSON response"
	LogMsgWriteResponseFail  = "Failed to write response buffer"
)
