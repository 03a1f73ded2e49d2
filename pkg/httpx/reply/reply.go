package reply

import (
	"context"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"mpin_check/pkg/contextx"
	"mpin_check/pkg/errcodes"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error пишет ошибку в формате rest.Error. Статус выбирается по типу
// failure-ошибки, код по умолчанию зависит от статуса.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		// Ошибки ввода ожидаемы, это не сбой сервиса.
		logger(ctx).Warn("invalid argument", slog.String(logx.FieldErrorCode, string(response.Code)), logx.Error(err))
		withDefaultCode(&response, errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		logger(ctx).Warn("not found", logx.Error(err))
		withDefaultCode(&response, errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsForbiddenError(err):
		logger(ctx).Warn("forbidden", logx.Error(err))
		withDefaultCode(&response, errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	default:
		logger(ctx).Error("error", logx.Error(err))
		withDefaultCode(&response, errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func withDefaultCode(response *rest.Error, code failure.ErrorCode) {
	if response.Code == "" {
		response.Code = rest.ErrorCode(code.String())
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
