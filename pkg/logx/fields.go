package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldChatID          = "chat-id"
	FieldPINLength       = "pin-length"
	FieldReasons         = "reasons"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSelfTestFailed  = "self-test-failed"
	FieldSelfTestPassed  = "self-test-passed"
	FieldStack           = "stack"
	FieldStrength        = "strength"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
