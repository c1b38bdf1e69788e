package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanAuthMiddleware      TraceSpanName = "auth_middleware"
	SpanUserMiddleware      TraceSpanName = "user_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
	SpanCronReminder        TraceSpanName = "cron_schedule_reminder"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricImportedRowsTotal   MetricName = "imported_employees_total"
	MetricImportSkippedTotal  MetricName = "import_skipped_total"
	MetricActivitiesTotal     MetricName = "activities_total"
	MetricFeedFallbackTotal   MetricName = "activity_feed_fallback_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelType     MetricLabelName = "type"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

// 供 tenant 範疇查詢使用（list/detail 類操作）
type TraceTenantListMeta struct {
	OrganizationID string `trace:"tenant.organization_id"`
	Status         string `trace:"list.status,omitempty"`
	ResultCount    int    `trace:"result.count,omitempty"`
}

// 供排程狀態轉移使用
type TraceScheduleTransitionMeta struct {
	ScheduleID string `trace:"schedule.id"`
	From       string `trace:"schedule.status.from"`
	To         string `trace:"schedule.status.to"`
	Allowed    bool   `trace:"schedule.transition.allowed"`
}

// 供 CSV 匯入使用
type TraceImportMeta struct {
	OrganizationID string `trace:"tenant.organization_id"`
	JobID          string `trace:"import.job_id,omitempty"`
	TotalRows      int    `trace:"import.total_rows"`
	Imported       int    `trace:"import.imported,omitempty"`
	Skipped        int    `trace:"import.skipped,omitempty"`
	Failed         int    `trace:"import.failed,omitempty"`
}

// 供活動牆讀取使用
type TraceActivityFeedMeta struct {
	OrganizationID string `trace:"tenant.organization_id"`
	Source         string `trace:"feed.source"` // "activities" / "fallback"
	ResultCount    int    `trace:"result.count"`
}

type TraceAuthMiddlewareMeta struct {
	UserID         string `trace:"auth.user_id,omitempty"`
	OrganizationID string `trace:"auth.organization_id,omitempty"`
	Status         string `trace:"auth.status,omitempty"`
}

type TraceUserMiddlewareMeta struct {
	UserID          string `trace:"auth.user_id,omitempty"`
	UserActive      bool   `trace:"auth.user_active"`
	UpdatedLastSeen bool   `trace:"user.updated_last_seen"`
	Status          string `trace:"auth.status,omitempty"`
}

type TraceRateLimitMeta struct {
	Key       string `trace:"rl.key"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "get"
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceResponseLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	ProjectName string `trace:"project.name"`
	Code        int    `trace:"http.response.code"`
	StatusCode  int    `trace:"http.response.status_code"`
	Body        string `trace:"http.response.body,omitempty"`
	Error       string `trace:"http.response.error_message,omitempty"`
	Version     string `trace:"log.version"`
	ResponseTS  string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}
