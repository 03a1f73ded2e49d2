package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"mpin_check/internal/client"
	service "mpin_check/internal/domain/service/pin"
	"mpin_check/internal/server"
	"mpin_check/pkg/errcodes"
	"mpin_check/pkg/httpx"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/rest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	router := server.NewRouter(
		server.NewServer(server.NewPinServer(service.NewPinService(nil))),
		logx.NewSensitiveDataMasker(),
		0,
	)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return httpServer
}

func TestClientCheck(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	c := client.New(newTestServer(t).URL, httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()))

	testCases := []struct {
		name        string
		request     rest.PinCheckRequest
		verdict     rest.PinVerdict
		errCode     string
		description string
	}{
		{
			name:    "Weak",
			request: rest.PinCheckRequest{Pin: "123123"},
			verdict: rest.PinVerdict{
				Strength:         "WEAK",
				Reasons:          []string{"COMMONLY_USED", "REPEATED_PATTERN"},
				FormattedReasons: "COMMONLY_USED\n• REPEATED_PATTERN",
			},
		},
		{
			name:    "Strong",
			request: rest.PinCheckRequest{Pin: "827364"},
			verdict: rest.PinVerdict{
				Strength: "STRONG",
				Reasons:  []string{},
			},
		},
		{
			name:        "Empty PIN",
			request:     rest.PinCheckRequest{Pin: "  "},
			errCode:     errcodes.EmptyPIN.String(),
			description: "please enter an MPIN.",
		},
		{
			name:        "Five digits",
			request:     rest.PinCheckRequest{Pin: "12345"},
			errCode:     errcodes.InvalidPINFormat.String(),
			description: "MPIN must be a 4 or 6 digit number.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			verdict, err := c.Check(ctx, tc.request)

			if tc.errCode != "" {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(tc.errCode, failure.Code(err).String())
				rq.Equal(tc.description, failure.Description(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.verdict, verdict)
		})
	}
}

func TestClientSelfTest(t *testing.T) {
	rq := require.New(t)

	c := client.New(newTestServer(t).URL)

	report, err := c.SelfTest(context.Background())
	rq.NoError(err)
	rq.Equal(33, report.Passed)
	rq.Zero(report.Failed)
}

func TestClientUnexpectedResponse(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer httpServer.Close()

	_, err := client.New(httpServer.URL).Check(context.Background(), rest.PinCheckRequest{Pin: "1234"})
	rq.ErrorIs(err, client.ErrUnexpectedResponse)
	rq.False(failure.IsInvalidArgumentError(err))
}
