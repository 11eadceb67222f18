// Package api implements the HTTP client for the risk-analysis backend.
// Every call runs under a bounded timeout and every failure is classified
// into one *Error value; the standard {success, data, error} envelope is
// unwrapped before data reaches callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/morikawa/riskadvisor/internal/logging"
)

// DefaultTimeout bounds a request unless the caller overrides it.
const DefaultTimeout = 30 * time.Second

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 10 << 20

// Request describes one call against the backend.
//
// Body, when set, is serialized as JSON and sent with a JSON content type.
// RawBody is sent as-is; ContentType applies only to RawBody (a multipart
// caller passes its writer's FormDataContentType, which carries the
// boundary). Body and RawBody are mutually exclusive.
type Request struct {
	Path        string
	Method      string
	Header      map[string]string
	Body        any
	RawBody     io.Reader
	ContentType string
	Timeout     time.Duration
}

// Client executes requests against a single backend base URL. It owns no
// session state; authorization headers are supplied per request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     logging.Logger
}

// New constructs a Client. A non-positive timeout falls back to
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     logger.With("component", "api"),
	}
}

// Do executes an enveloped request and returns the envelope's data on
// success. All failures come back as *Error.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, errorFromBody(status, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{
			Code:       CodeUnknown,
			Message:    "unexpected response format",
			StatusCode: status,
			cause:      err,
		}
	}

	if !env.Success {
		if env.Error != nil {
			return nil, &Error{
				Code:       env.Error.ErrorCode,
				Message:    env.Error.Message,
				StatusCode: status,
				Details:    env.Error.Details,
			}
		}
		return nil, &Error{
			Code:       CodeUnknown,
			Message:    "request failed without error detail",
			StatusCode: status,
		}
	}

	return env.Data, nil
}

// DoRaw executes a request against an endpoint that returns plain JSON
// with no envelope. Transport, timeout, and HTTP error classification are
// identical to Do; only the unwrapping is skipped.
func (c *Client) DoRaw(ctx context.Context, req Request) (json.RawMessage, error) {
	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errorFromBody(status, body)
	}
	return body, nil
}

// roundTrip performs the HTTP exchange and classifies transport failures.
// It returns the status code and the (size-capped) response body.
func (c *Client) roundTrip(ctx context.Context, req Request) (int, []byte, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	contentType := ""
	switch {
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, &Error{Code: CodeUnknown, Message: "failed to encode request body", cause: err}
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	case req.RawBody != nil:
		bodyReader = req.RawBody
		contentType = req.ContentType
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bodyReader)
	if err != nil {
		return 0, nil, &Error{Code: CodeUnknown, Message: "failed to build request", cause: err}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	c.logger.Info(ctx, "api request", "request_id", requestID, "method", req.Method, "path", req.Path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		apiErr := classifyTransportError(err)
		c.logger.Error(ctx, "api request failed",
			"request_id", requestID, "method", req.Method, "path", req.Path,
			"code", apiErr.Code, "error", err.Error())
		return 0, nil, apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		apiErr := classifyTransportError(err)
		c.logger.Error(ctx, "api response read failed",
			"request_id", requestID, "method", req.Method, "path", req.Path,
			"code", apiErr.Code, "error", err.Error())
		return 0, nil, apiErr
	}

	c.logger.Info(ctx, "api response", "request_id", requestID, "method", req.Method,
		"path", req.Path, "status", resp.StatusCode)
	return resp.StatusCode, body, nil
}

// classifyTransportError maps a failed exchange to a timeout, network, or
// unknown error. The original cause is preserved for diagnostics.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeTimeout, Message: "request timed out", cause: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return &Error{Code: CodeTimeout, Message: "request timed out", cause: err}
		}
		return &Error{Code: CodeNetwork, Message: "network error, check the connection", cause: err}
	}
	return &Error{Code: CodeUnknown, Message: "unexpected error", cause: err}
}

// errorFromBody builds the error for a non-2xx response: the server's
// envelope error if one parses, a generic HTTP error otherwise.
func errorFromBody(status int, body []byte) *Error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		code := env.Error.ErrorCode
		if code == "" {
			code = CodeHTTP
		}
		return &Error{
			Code:       code,
			Message:    env.Error.Message,
			StatusCode: status,
			Details:    env.Error.Details,
		}
	}
	return &Error{
		Code:       CodeHTTP,
		Message:    fmt.Sprintf("HTTP error %d", status),
		StatusCode: status,
	}
}
