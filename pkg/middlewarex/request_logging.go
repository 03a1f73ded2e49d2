package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"mpin_check/pkg/logx"
)

// Тело больше этого (или без Content-Length) в лог не пишется, только заголовки.
const maxDumpBodyBytes = 64 << 10

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dumpBody := r.ContentLength >= 0 && r.ContentLength <= maxDumpBodyBytes

			dump, err := httputil.DumpRequest(r, dumpBody)

			// Маскируем до обрезки: обрезанное поле шаблон маскера не узнает.
			dump = logx.Truncate(sensitiveDataMasker.Mask(dump), logFieldMaxLen)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(dump)),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
