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
)

// Battle Metrics
var (
	BattlesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCreated,
			Help: HelpTextBattlesCreated,
		},
		[]string{LabelOpponent},
	)

	BattlesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCompleted,
			Help: HelpTextBattlesCompleted,
		},
		[]string{LabelWinner},
	)

	SubmitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSubmitDuration,
			Help:    HelpTextSubmitDuration,
			Buckets: SubmitLatencyBuckets,
		},
	)
)

// Engine Metrics
var (
	Judgements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJudgements,
			Help: HelpTextJudgements,
		},
		[]string{LabelScoring},
	)

	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFallbacks,
			Help: HelpTextFallbacks,
		},
		[]string{LabelComponent, LabelReason},
	)

	LeaderboardCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardCache,
			Help: HelpTextLeaderboardCache,
		},
		[]string{LabelResult},
	)
)
