package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	service "mpin_check/internal/domain/service/pin"
	"mpin_check/internal/domain/service/pinRating"
	"mpin_check/internal/metrics"
	"mpin_check/internal/server"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/rest"
	"mpin_check/pkg/tests"
)

const testLogFieldMaxLen = 4096

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := service.NewPinService(metrics.New(prometheus.NewRegistry()))

	router := server.NewRouter(
		server.NewServer(server.NewPinServer(svc)),
		logx.NewSensitiveDataMasker(),
		testLogFieldMaxLen,
	)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return httpServer
}

func TestPostV1PinCheck(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, nil)

	testCases := []struct {
		name       string
		request    rest.PinCheckRequest
		statusCode int
		verdict    rest.PinVerdict
		err        rest.Error
	}{
		{
			name:       "Commonly used",
			request:    rest.PinCheckRequest{Pin: "1234"},
			statusCode: http.StatusOK,
			verdict: rest.PinVerdict{
				Strength:         "WEAK",
				Reasons:          []string{"COMMONLY_USED"},
				FormattedReasons: "COMMONLY_USED",
			},
		},
		{
			name:       "Strong",
			request:    rest.PinCheckRequest{Pin: "3749"},
			statusCode: http.StatusOK,
			verdict: rest.PinVerdict{
				Strength: "STRONG",
				Reasons:  []string{},
			},
		},
		{
			name:       "Month and day is not a candidate",
			request:    rest.PinCheckRequest{Pin: "0102", UserDob: "02/01/1998"},
			statusCode: http.StatusOK,
			verdict: rest.PinVerdict{
				Strength: "STRONG",
				Reasons:  []string{},
			},
		},
		{
			name: "All five reasons",
			request: rest.PinCheckRequest{
				Pin:         "1111",
				UserDob:     "11/11/2011",
				SpouseDob:   "11/11/2012",
				Anniversary: "11/11/2013",
			},
			statusCode: http.StatusOK,
			verdict: rest.PinVerdict{
				Strength: "WEAK",
				Reasons: []string{
					"COMMONLY_USED",
					"DEMOGRAPHIC_ANNIVERSARY",
					"DEMOGRAPHIC_DOB_SELF",
					"DEMOGRAPHIC_DOB_SPOUSE",
					"REPEATED_PATTERN",
				},
				FormattedReasons: "COMMONLY_USED\n• DEMOGRAPHIC_ANNIVERSARY\n• DEMOGRAPHIC_DOB_SELF\n• DEMOGRAPHIC_DOB_SPOUSE\n• REPEATED_PATTERN",
			},
		},
		{
			name:       "Empty PIN",
			request:    rest.PinCheckRequest{Pin: ""},
			statusCode: http.StatusBadRequest,
			err: rest.Error{
				Code:    "EmptyPIN",
				Message: "please enter an MPIN.",
			},
		},
		{
			name:       "Three digits",
			request:    rest.PinCheckRequest{Pin: "123"},
			statusCode: http.StatusBadRequest,
			err: rest.Error{
				Code:    "InvalidPINFormat",
				Message: "MPIN must be a 4 or 6 digit number.",
			},
		},
		{
			name:       "Date too long",
			request:    rest.PinCheckRequest{Pin: "3749", UserDob: strings.Repeat("1", 33)},
			statusCode: http.StatusBadRequest,
			err: rest.Error{
				Code: "ValidationError",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				verdict  rest.PinVerdict
				errorDst rest.Error
			)

			resp, err := client.Post(ctx, "/v1/pin/check", nil, tc.request, &verdict, &errorDst)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)

			if tc.statusCode == http.StatusOK {
				rq.Equal(tc.verdict, verdict)

				return
			}

			rq.Equal(tc.err.Code, errorDst.Code)

			if tc.err.Message != "" {
				rq.Equal(tc.err.Message, errorDst.Message)
			}

			rq.Equal(resp.Header.Get("X-Trace-Id"), errorDst.SupportID)
		})
	}
}

func TestPostV1PinCheckInvalidJSON(t *testing.T) {
	rq := require.New(t)

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, nil)

	var errorDst rest.Error

	resp, err := client.PostJSON(context.Background(), "/v1/pin/check", nil, `{"pin":`, nil, &errorDst)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("ValidationError"), errorDst.Code)
	rq.Equal("Invalid JSON", errorDst.Message)
}

func TestPostV1PinCheckRandom(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, nil)
	random := tests.NewRandomizer()

	for range 20 {
		length := 4
		if random.Bool() {
			length = 6
		}

		pin := random.Digits(length)

		var verdict rest.PinVerdict

		resp, err := client.Post(ctx, "/v1/pin/check", nil, rest.PinCheckRequest{Pin: pin, UserDob: "1990-05-17"}, &verdict, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode, pin)

		expected := pinRating.Classify(pin, "1990-05-17", "", "")

		rq.Equal(expected.Strength.String(), verdict.Strength, pin)
		rq.Len(verdict.Reasons, len(expected.Reasons), pin)
		rq.Equal(pinRating.FormatReasons(expected.Reasons), verdict.FormattedReasons, pin)
	}
}

func TestPostV1PinSelfTest(t *testing.T) {
	rq := require.New(t)

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, nil)

	var report rest.SelfTestReport

	resp, err := client.Post(context.Background(), "/v1/pin/selftest", nil, nil, &report, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(33, report.Passed)
	rq.Zero(report.Failed)
	rq.Len(report.Lines, 33)
	rq.Equal("PASS: Test case 1 - MPIN: 1234 - Strength", report.Lines[0])
}
