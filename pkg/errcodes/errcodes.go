package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	EmptyPIN         failure.ErrorCode = "EmptyPIN"         // PIN не передан или состоит из пробелов
	InvalidPINFormat failure.ErrorCode = "InvalidPINFormat" // не цифры или длина не 4/6
)
