package constants

// Session and context keys
const (
	SessionCookieName = "portfolio_session"
	ContextKeyUserID  = "user_id"
	ContextKeyRole    = "user_role"
	ContextKeyProject = "project"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Auth
const (
	MinPasswordLength = 8
)

// Project images
const (
	MaxProjectImages = 10
	MaxImageSize     = 5 * 1024 * 1024
)

// Reports
const (
	DefaultReportPrefix = "bilaad"
	ReportContentType   = "application/json"
)
