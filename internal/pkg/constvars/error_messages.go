package constvars

// Client-facing messages. Kept short and human readable, they are shown
// near the point of action by the UI.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"

	ErrClientNotLoggedIn               = "your session ended, please login again"
	ErrClientNotAuthorized             = "you can't access this feature"
	ErrClientNotThreadParticipant      = "you are not a participant of this conversation"
	ErrClientInvalidUsernameOrPassword = "invalid email or password"
	ErrClientPasswordsDoNotMatch       = "passwords do not match"
	ErrClientEmailAlreadyExists        = "email already used"

	ErrClientInvalidAppointmentTime = "invalid appointment date or time"
	ErrClientPatientRequired        = "please select a patient"
	ErrClientSubjectRequired        = "subject cannot be empty"
	ErrClientMessageBodyRequired    = "message cannot be empty"
	ErrClientInvoiceNeedsLineItem   = "add at least one line item"

	ErrClientPatientNotFound = "patient not found"
	ErrClientInvoiceNotFound = "invoice not found"
	ErrClientThreadNotFound  = "conversation not found"
)

// Developer-facing messages, never shown to clients in production.
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevValidationFailed     = "request validation failed"
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTimestamp = "cannot parse date and time into a valid instant"
	ErrDevMissingReference     = "required %s reference is absent"

	ErrDevMissingSession            = "no active session on a guarded operation"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthInvalidSession        = "session not found or already revoked"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevPasswordsDoNotMatch       = "passwords do not match"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevNotThreadParticipant      = "requester is not a member of the thread participants set"

	ErrDevDocumentNotFound           = "document not found"
	ErrDevDBFailedToFindDocument     = "failed to find document on mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on mongo database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevServerProcess          = "internal server processing failure"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing the request"
	ErrDevMissingRequestID       = "request ID missing from context"
)
