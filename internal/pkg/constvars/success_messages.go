package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Patient messages
	PatientCreatedSuccess = "patient saved"
	PatientListSuccess    = "patients fetched successfully"
	PatientGetSuccess     = "patient fetched successfully"

	// Appointment messages
	AppointmentCreatedSuccess = "appointment created"
	AppointmentListSuccess    = "appointments fetched successfully"

	// Invoice messages
	InvoiceCreatedSuccess = "invoice created"
	InvoiceListSuccess    = "invoices fetched successfully"
	InvoiceGetSuccess     = "invoice fetched successfully"

	// Messaging messages
	ThreadCreatedSuccess = "conversation created"
	ThreadListSuccess    = "conversations fetched successfully"
	MessageSentSuccess   = "message sent"
	MessageListSuccess   = "messages fetched successfully"

	// Dashboard messages
	DashboardStatsSuccess = "dashboard stats fetched successfully"
)
