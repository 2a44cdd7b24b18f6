package apperrors

const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInternalServer     = "INTERNAL_SERVER"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeEventPublishError  = "EVENT_PUBLISH_ERROR"
	CodeObjectMarshalError = "OBJECT_MARSHALL_ERROR"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeTransactionError   = "TRANSACTION_ERROR"
)
