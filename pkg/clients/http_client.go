package clients

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/otpshop/pkg/auth"
)

const defaultTimeout = time.Second * 15

// UserIDHeader carries the user id decoded from the bearer token.
const UserIDHeader = "x-user-id"

// HTTPClient is the single outbound client for the upstream API.
type HTTPClient struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPClient builds a client for baseURL. rps <= 0 disables outbound throttling.
func NewHTTPClient(baseURL string, timeout time.Duration, rps float64) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	h := &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
	if rps > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
		h.client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			return h.limiter.Wait(r.Context())
		})
	}
	return h
}

// R starts a request on behalf of token. An empty token makes an anonymous request.
func (h *HTTPClient) R(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token == "" {
		return req
	}
	req.SetAuthToken(token)
	userID, err := auth.UserIDFromToken(token)
	if err != nil {
		zap.L().Debug("can't derive user id from token", zap.Error(err))
		return req
	}
	return req.SetHeader(UserIDHeader, userID)
}

func (h *HTTPClient) BaseURL() string {
	return h.client.BaseURL
}
