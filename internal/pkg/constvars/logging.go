package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingEndpointKey   = "endpoint"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"

	LoggingUserIDKey    = "user_id"
	LoggingPatientIDKey = "patient_id"
	LoggingThreadIDKey  = "thread_id"
	LoggingInvoiceIDKey = "invoice_id"
)
