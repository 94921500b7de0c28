// Package upstream talks to the OTP and payment API that owns every business rule.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/pkg/clients"
)

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	http *clients.HTTPClient
}

func New(hc *clients.HTTPClient) *Client {
	return &Client{http: hc}
}

func (c *Client) get(ctx context.Context, token, path string, query map[string]string, out any) error {
	req := c.http.R(ctx, token)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	return decode(path, resp, err, out)
}

func (c *Client) post(ctx context.Context, token, path string, body any, out any) error {
	req := c.http.R(ctx, token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Post(path)
	return decode(path, resp, err, out)
}

func decode(path string, resp *resty.Response, err error, out any) error {
	if err != nil {
		zap.L().Warn("upstream request failed", zap.String("path", path), zap.Error(err))
		return newAPIError(0, "", err)
	}

	var env envelope
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 {
		if jerr := json.Unmarshal(body, &env); jerr != nil {
			if resp.IsError() {
				return newAPIError(resp.StatusCode(), "", fmt.Errorf("status %d", resp.StatusCode()))
			}
			return newAPIError(resp.StatusCode(), "", fmt.Errorf("decode %s: %w", path, jerr))
		}
	}

	message := env.Message
	if message == "" {
		message = env.Error
	}
	if resp.IsError() || (env.Success != nil && !*env.Success) {
		zap.L().Info("upstream rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", message),
		)
		status := resp.StatusCode()
		if !resp.IsError() {
			status = http.StatusUnprocessableEntity
		}
		return newAPIError(status, message, nil)
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newAPIError(resp.StatusCode(), "", fmt.Errorf("decode %s data: %w", path, err))
	}
	return nil
}

// IsAPIError reports whether err came from the upstream and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
