package constants

import "time"

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
	AdminSessionKey         ContextKey = "admin_session"
)

const (
	AccessTokenDuration  = time.Hour
	AdminSessionDuration = 8 * time.Hour
	// bcrypt cost
	PasswordHashCost = 10
)

const (
	AdminSessionCookieName = "adminsession"
	AdminLoginPath         = "/admin/login"
	AdminOrdersPath        = "/admin/orders"
	ReportFileName         = "orders_report.xlsx"
	ReportSheetName        = "Orders"
	XlsxContentType        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// 報表時間格式, 對應 en-US locale string
	ReportTimeLayout = "1/2/2006, 3:04:05 PM"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey    RequestID = "request_id"
	RequestIDHeader           = "X-Request-Id"
)
