package transport

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Client wraps every backend endpoint behind one method each. The session
// credential is a cookie held in the client's jar; it is attached to every
// request automatically and callers never pass credentials explicitly.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	jar, _ := cookiejar.New(nil)

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	httpClient.JSONMarshal = jsoniter.Marshal
	httpClient.JSONUnmarshal = jsoniter.Unmarshal

	// Single place that recognizes auth failure; everything else surfaces as a
	// status-carrying *APIError.
	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if !resp.IsError() {
			return nil
		}
		apiErr := parseAPIError(resp.StatusCode(), resp.Body())
		logger.Debug("api request failed",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	})

	return &Client{http: httpClient, logger: logger}
}

// decodeList unmarshals a list response, coercing anything that is not a JSON
// array to an empty slice so list views never render a half-shaped payload.
func decodeList[E any](logger *zap.Logger, body []byte) ([]E, error) {
	var items []E
	if err := jsoniter.Unmarshal(body, &items); err != nil {
		logger.Warn("non-array list response, coercing to empty", zap.Error(err))
		return []E{}, nil
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}
