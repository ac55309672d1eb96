package constant

const (
	DateFormat    = "2006-01-02"
	ClockFormat   = "15:04:05"
	HourMinFormat = "15:04"
)

const (
	RequestParamID   = "id"
	RequestParamDate = "date"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	MinutesToSeconds = 60
	MinutesPerDay    = 24 * 60
)

const (
	CourtStateClosed = 0
	CourtStateOpen   = 1
)

const (
	BookingActive   = 1
	BookingInactive = 0
)

const (
	PlayerStatusConfirmed = 1
)

const (
	Empty = ""
)
