package constvars

type ContextKey string

const (
	ContextRequestIDKey ContextKey = "request_id"
	ContextSessionKey   ContextKey = "session"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionInvoices       = "invoices"
	MongoCollectionMessageThreads = "message_threads"
	MongoCollectionMessages       = "messages"
)

const (
	URLParamPatientID = "patientID"
	URLParamInvoiceID = "invoiceID"
	URLParamThreadID  = "threadID"
)

const (
	QueryParamLimit  = "limit"
	QueryParamSearch = "search"
)

const (
	DefaultPatientListLimit     = 200
	DefaultInvoiceListLimit     = 50
	DefaultThreadListLimit      = 50
	DefaultMessageListLimit     = 50
	DefaultUpcomingApptLimit    = 20
	UpcomingApptLookbackMinutes = 60
)

const (
	AppointmentDateLayout     = "2006-01-02"
	AppointmentTimeLayout     = "15:04"
	AppointmentDateTimeLayout = "2006-01-02T15:04"
	PatientDobLayout          = "2006-01-02"
)

const (
	InvoiceNumberPrefix = "INV-"
)

const (
	PatientUnnamedFallback = "Unnamed"
)
