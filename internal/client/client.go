package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"mpin_check/pkg/httpx"
	"mpin_check/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultTimeout = 10 * time.Second

var ErrUnexpectedResponse = errors.New("unexpected response")

// Client клиент HTTP API сервиса проверки PIN. Запросы и ответы пишутся в
// лог через httpx.LoggingRoundTripper, opts настраивают его (маскер, обрезка).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...httpx.Option) Client {
	return Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...),
			Timeout:   defaultTimeout,
		},
	}
}

func (c Client) Check(ctx context.Context, request rest.PinCheckRequest) (rest.PinVerdict, error) {
	var verdict rest.PinVerdict

	if err := c.post(ctx, "/v1/pin/check", request, &verdict); err != nil {
		return rest.PinVerdict{}, err
	}

	return verdict, nil
}

func (c Client) SelfTest(ctx context.Context) (rest.SelfTestReport, error) {
	var report rest.SelfTestReport

	if err := c.post(ctx, "/v1/pin/selftest", nil, &report); err != nil {
		return rest.SelfTestReport{}, err
	}

	return report, nil
}

func (c Client) post(ctx context.Context, endpoint string, request, dest any) error {
	body := []byte("{}")

	if request != nil {
		var err error

		if body, err = json.Marshal(request); err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode: %w", err)
		}

		return nil
	}

	var apiErr rest.Error

	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	// 400 - ошибка ввода, отдаём её тем же типом, что и локальная проверка.
	if resp.StatusCode == http.StatusBadRequest {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("POST %s: %s", endpoint, apiErr.Code),
			failure.WithCode(failure.ErrorCode(apiErr.Code)),
			failure.WithDescription(apiErr.Message),
		)
	}

	return fmt.Errorf(
		"%w: status %d, code %s, support id %s",
		ErrUnexpectedResponse, resp.StatusCode, apiErr.Code, apiErr.SupportID,
	)
}
