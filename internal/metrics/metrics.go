package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	ActivitiesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesProcessed,
			Help: HelpTextActivitiesProcessed,
		},
		[]string{LabelKind},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelCharacter},
	)

	MilestonesReached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestonesReached,
			Help: HelpTextMilestonesReached,
		},
		[]string{LabelAttribute},
	)

	SynergiesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSynergiesUnlocked,
			Help: HelpTextSynergiesUnlocked,
		},
		[]string{LabelSynergy},
	)

	ResonanceFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResonanceFired,
			Help: HelpTextResonanceFired,
		},
		[]string{LabelType, LabelIntensity},
	)

	ResonanceBonusXP = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResonanceBonusXP,
			Help: HelpTextResonanceBonusXP,
		},
	)

	SaveConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveConflicts,
			Help: HelpTextSaveConflicts,
		},
	)
)

// Economy Metrics
var (
	SnapshotsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsCaptured,
			Help: HelpTextSnapshotsCaptured,
		},
		[]string{LabelTier},
	)

	MultiplierAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMultiplierAdjustments,
			Help: HelpTextMultiplierAdjustments,
		},
		[]string{LabelMetric},
	)

	RebalanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRebalanceRuns,
			Help: HelpTextRebalanceRuns,
		},
		[]string{LabelOutcome},
	)
)
