package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "arena_http_requests_total"
	MetricNameHTTPRequestDuration  = "arena_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "arena_http_requests_in_flight"

	MetricNameBattlesCreated   = "arena_battles_created_total"
	MetricNameBattlesCompleted = "arena_battles_completed_total"
	MetricNameSubmitDuration   = "arena_submit_duration_seconds"
	MetricNameJudgements       = "arena_judgements_total"
	MetricNameFallbacks        = "arena_fallbacks_total"
	MetricNameLeaderboardCache = "arena_leaderboard_cache_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextBattlesCreated   = "Total number of battles created"
	HelpTextBattlesCompleted = "Total number of battles judged and completed"
	HelpTextSubmitDuration   = "Duration of the submit, solve and judge chain in seconds"
	HelpTextJudgements       = "Total number of judgements by scoring path"
	HelpTextFallbacks        = "Total number of degradations from the text generation dependency"
	HelpTextLeaderboardCache = "Leaderboard ranked view cache operations by result"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOpponent  = "opponent"
	LabelWinner    = "winner"
	LabelScoring   = "scoring_path"
	LabelComponent = "component"
	LabelReason    = "reason"
	LabelResult    = "result"
)

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SubmitLatencyBuckets covers degraded runs (milliseconds) up to slow
// generation calls (tens of seconds)
var SubmitLatencyBuckets = []float64{.005, .05, .25, 1, 2.5, 5, 10, 20, 30, 60}
