package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_requests_rate_limited_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameActivitiesProcessed = "progression_activities_processed_total"
	MetricNameXPAwarded           = "progression_xp_awarded_total"
	MetricNameLevelUps            = "progression_level_ups_total"
	MetricNameMilestonesReached   = "progression_milestones_reached_total"
	MetricNameSynergiesUnlocked   = "progression_synergies_unlocked_total"
	MetricNameResonanceFired      = "progression_resonance_fired_total"
	MetricNameResonanceBonusXP    = "progression_resonance_bonus_xp_total"
	MetricNameSaveConflicts       = "progression_save_conflicts_total"
)

// Economy metric names
const (
	MetricNameSnapshotsCaptured     = "economy_snapshots_captured_total"
	MetricNameMultiplierAdjustments = "economy_multiplier_adjustments_total"
	MetricNameRebalanceRuns         = "economy_rebalance_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of HTTP requests rejected by the rate limiter"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Progression metric help text
const (
	HelpTextActivitiesProcessed = "Total number of activities processed by kind"
	HelpTextXPAwarded           = "Total XP awarded to players, including resonance bonuses"
	HelpTextLevelUps            = "Total number of level-ups by character"
	HelpTextMilestonesReached   = "Total number of crystal milestones reached"
	HelpTextSynergiesUnlocked   = "Total number of crystal synergies unlocked"
	HelpTextResonanceFired      = "Total number of resonance events fired"
	HelpTextResonanceBonusXP    = "Total bonus XP granted by resonance events"
	HelpTextSaveConflicts       = "Total number of optimistic concurrency conflicts on save"
)

// Economy metric help text
const (
	HelpTextSnapshotsCaptured     = "Total number of economic snapshots captured by tier"
	HelpTextMultiplierAdjustments = "Total number of balance adjustments applied by metric"
	HelpTextRebalanceRuns         = "Total number of per-user rebalance runs by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelKind      = "kind"
	LabelCharacter = "character"
	LabelAttribute = "attribute"
	LabelSynergy   = "synergy"
	LabelIntensity = "intensity"
	LabelTier      = "tier"
	LabelMetric    = "metric"
	LabelOutcome   = "outcome"
)

// Label values
const (
	CharacterPlayer    = "player"
	CharacterCompanion = "companion"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	// PathUnmatched labels requests chi could not route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
