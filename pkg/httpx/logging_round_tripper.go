package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"mpin_check/pkg/contextx"
	"mpin_check/pkg/logx"
)

const headerNameTraceID = "X-Trace-Id"

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper пишет в лог дампы исходящего запроса и ответа
// (через маскер) и проставляет X-Trace-Id, чтобы supportId из ответа
// сервиса совпадал с записью в логе клиента.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
}

func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	traceID := req.Header.Get(headerNameTraceID)
	if traceID == "" {
		traceID = traceIDFromContext(req)

		// RoundTripper не должен менять исходный запрос.
		req = req.Clone(ctx)
		req.Header.Set(headerNameTraceID, traceID)
	}

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		logger(ctx).Error("httputil.DumpRequestOut", slog.String(logx.FieldTraceID, traceID), logx.Error(err))
	}

	logger(ctx).Info(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldTraceID, traceID),
		slog.String(logx.FieldRequestBody, rt.dump(reqBytes)),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		logger(ctx).Error("httputil.DumpResponse", slog.String(logx.FieldTraceID, traceID), logx.Error(err))
	}

	logger(ctx).Info(
		logx.FieldHTTPResponse,
		slog.String(logx.FieldTraceID, traceID),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.dump(respBytes)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

// dump маскирует до обрезки, иначе обрезанное значение поля не совпадёт с шаблоном маскера.
func (rt LoggingRoundTripper) dump(b []byte) string {
	return string(logx.Truncate(rt.sensitiveDataMasker.Mask(b), rt.logFieldMaxLen))
}

func traceIDFromContext(req *http.Request) string {
	traceID, err := contextx.TraceIDFromContext(req.Context())
	if err != nil {
		return xid.New().String()
	}

	return traceID.String()
}
