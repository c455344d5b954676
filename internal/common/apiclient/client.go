// Package apiclient is the one HTTP client every resource store goes
// through. Bearer injection, the 401 logout side effect, 422 flattening, and
// request metrics live here instead of being duplicated per store.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/errors"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/metrics"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/observability"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	logger     logger.Logger
	obs        *observability.Observability
}

type Options struct {
	BaseURL       string
	Timeout       time.Duration
	Session       *session.Session
	Logger        logger.Logger
	Observability *observability.Observability
}

func New(opts Options) *Client {
	loggerInstance := opts.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewStructured("info", "json")
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		session: opts.Session,
		logger:  loggerInstance,
		obs:     opts.Observability,
	}
}

// Session exposes the injected credential store.
func (c *Client) Session() *session.Session {
	return c.session
}

// requestOptions carries per-call overrides.
type requestOptions struct {
	timeout  time.Duration
	skipAuth bool
	resource string
}

type RequestOption func(*requestOptions)

// WithTimeout overrides the client default for one request.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) { o.timeout = d }
}

// WithoutAuth skips bearer injection (login only).
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.skipAuth = true }
}

// WithResource labels the request for metrics and logs.
func WithResource(name string) RequestOption {
	return func(o *requestOptions) { o.resource = name }
}

func (c *Client) Get(ctx context.Context, path string, out *Envelope, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out *Envelope, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out *Envelope, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Do issues one request against the backend. The out envelope may be nil when
// the caller only cares about success.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, out *Envelope, opts ...RequestOption) error {
	reqOpts := requestOptions{resource: resourceFromPath(path)}
	for _, opt := range opts {
		opt(&reqOpts)
	}

	startTime := time.Now()
	metrics.APIRequestsInFlight.WithLabelValues(reqOpts.resource).Inc()
	defer metrics.APIRequestsInFlight.WithLabelValues(reqOpts.resource).Dec()

	err := c.do(ctx, method, path, body, out, reqOpts)

	duration := time.Since(startTime)
	metrics.APIRequestDuration.WithLabelValues(reqOpts.resource, method).Observe(duration.Seconds())
	if c.obs != nil {
		status := "ok"
		if err != nil {
			status = string(errors.Code(err))
		}
		c.obs.RecordRequest(ctx, reqOpts.resource, status)
		c.obs.RecordRequestDuration(ctx, duration, reqOpts.resource)
	}

	if err != nil {
		metrics.APIRequestsFailed.WithLabelValues(reqOpts.resource, method, string(errors.Code(err))).Inc()
		return err
	}
	metrics.APIRequestsCompleted.WithLabelValues(reqOpts.resource, method).Inc()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out *Envelope, reqOpts requestOptions) error {
	var token string
	if !reqOpts.skipAuth {
		var err error
		token, err = c.session.Token()
		if err != nil {
			// Refuse locally: no round trip without a credential.
			return errors.NewNoTokenError()
		}
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	if reqOpts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, reqOpts.timeout)
		defer cancel()
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The client-wide http.Client timeout surfaces as a transport error
		// with no context deadline, so check both.
		if ctx.Err() == context.DeadlineExceeded || os.IsTimeout(err) {
			return errors.NewRequestTimeoutError(reqOpts.resource, err)
		}
		return errors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewDecodeError(err)
	}

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(resp.StatusCode, respBody, reqOpts)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.NewDecodeError(err)
		}
	}
	return nil
}

// handleErrorResponse maps backend failures onto the flat error taxonomy.
// A 401 from any endpoint clears the session before surfacing the error.
func (c *Client) handleErrorResponse(status int, body []byte, reqOpts requestOptions) error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	switch status {
	case http.StatusUnauthorized:
		if !reqOpts.skipAuth {
			c.logger.Warn("Token rejected by backend, clearing session", map[string]interface{}{
				"resource": reqOpts.resource,
			})
			c.session.Clear()
		}
		return errors.NewUnauthorizedError(parsed.message())
	case http.StatusUnprocessableEntity:
		if len(parsed.Errors) > 0 {
			return errors.NewValidationError(parsed.Errors)
		}
		return errors.NewValidationError(map[string][]string{"payload": {nonEmpty(parsed.message(), "validation failed")}})
	case http.StatusNotFound:
		return errors.NewNotFoundError(reqOpts.resource, "")
	default:
		return errors.NewServerError(parsed.message(), status)
	}
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// resourceFromPath derives a metrics label from the first meaningful path
// segment: "/platforms/invoices/3" → "invoices".
func resourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 0 || parts[0] == "":
		return "unknown"
	case len(parts) >= 2 && (parts[0] == "platforms" || parts[0] == "services" || parts[0] == "roles"):
		return parts[1]
	default:
		return parts[0]
	}
}
