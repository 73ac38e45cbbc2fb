package httpgateway

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/platform/logging"
	"github.com/coachboard/coachboard/internal/platform/resilience"
	"github.com/coachboard/coachboard/internal/usecase"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	sessionCookieName = "session"
	maxErrorBody      = 4096
	statusSuccess     = "success"
)

var errTeamServerTransient = crerr.New("team server transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	SessionCookie  string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the team server's lineup, rotation and snapshot endpoints.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	sessionCookie  string
	logger         *logging.Logger
	validate       *validator.Validate
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	loadTimeout    time.Duration
	snapshots      resilience.Group[gameday.Snapshot]
}

var _ gameday.Gateway = (*Client)(nil)

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid COACHBOARD_BASE_URL")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		sessionCookie:  strings.TrimSpace(cfg.SessionCookie),
		logger:         logger.Named("gateway"),
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		loadTimeout:    httpClient.Timeout,
	}, nil
}

// LoadSnapshot fetches the full game state. Concurrent loads for the same
// game share one request, which is not bound to any single caller's
// cancellation.
func (c *Client) LoadSnapshot(ctx context.Context, gameID int64) (gameday.Snapshot, error) {
	if gameID <= 0 {
		return gameday.Snapshot{}, fmt.Errorf("%w: game id must be greater than zero", usecase.ErrInvalidInput)
	}

	key := strconv.FormatInt(gameID, 10)
	snapshot, err, shared := c.snapshots.Do(key, func() (gameday.Snapshot, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		var envelope snapshotEnvelope
		path := "/api/games/" + key + "/snapshot"
		status, raw, err := c.do(loadCtx, http.MethodGet, path, nil)
		if err != nil {
			return gameday.Snapshot{}, err
		}
		if status == http.StatusNotFound {
			return gameday.Snapshot{}, fmt.Errorf("%w: game %d", usecase.ErrNotFound, gameID)
		}
		if status/100 != 2 {
			return gameday.Snapshot{}, fmt.Errorf("load snapshot status=%d body=%s", status, truncateForLog(string(raw), 512))
		}
		if err := sonic.Unmarshal(raw, &envelope); err != nil {
			return gameday.Snapshot{}, crerr.Wrap(err, "decode snapshot")
		}
		return envelope.toDomain()
	})
	if err != nil {
		return gameday.Snapshot{}, err
	}
	if shared {
		c.logger.DebugContext(ctx, "snapshot load shared with concurrent caller", "game_id", gameID)
	}
	return snapshot, nil
}

// SaveLineup creates the lineup when id is 0 and edits it otherwise.
func (c *Client) SaveLineup(ctx context.Context, id int64, payload gameday.LineupPayload) (gameday.SaveResult, error) {
	if err := c.validate.StructCtx(ctx, payload); err != nil {
		return gameday.SaveResult{}, fmt.Errorf("%w: lineup payload: %v", usecase.ErrInvalidInput, err)
	}

	path := "/add_lineup"
	if id > 0 {
		path = "/edit_lineup/" + strconv.FormatInt(id, 10)
	}
	result, err := c.save(ctx, "lineup", path, payload)
	if err != nil {
		return gameday.SaveResult{}, err
	}
	if result.ID == 0 {
		result.ID = id
	}
	return result, nil
}

func (c *Client) SaveRotation(ctx context.Context, payload gameday.RotationPayload) (gameday.SaveResult, error) {
	if err := c.validate.StructCtx(ctx, payload); err != nil {
		return gameday.SaveResult{}, fmt.Errorf("%w: rotation payload: %v", usecase.ErrInvalidInput, err)
	}

	result, err := c.save(ctx, "rotation", "/save_rotation", payload)
	if err != nil {
		return gameday.SaveResult{}, err
	}
	if result.ID == 0 {
		result.ID = payload.ID
	}
	return result, nil
}

func (c *Client) save(ctx context.Context, resource, path string, payload any) (gameday.SaveResult, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return gameday.SaveResult{}, crerr.Wrapf(err, "encode %s payload", resource)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("coachboard.resource", resource),
			attribute.String("coachboard.path", path),
			attribute.Int("coachboard.request_bytes", buf.Len()),
		)
	}

	status, raw, err := c.do(ctx, http.MethodPost, path, buf.B)
	if err != nil {
		if ctx.Err() != nil {
			return gameday.SaveResult{}, err
		}
		c.logger.WarnContext(ctx, "team server unreachable during save", "resource", resource, "error", err)
		return gameday.SaveResult{}, &gameday.SaveFailedError{
			Resource: resource,
			Message:  "could not reach the team server",
			Cause:    err,
		}
	}

	var resp saveResponse
	decodeErr := sonic.Unmarshal(raw, &resp)
	if status/100 != 2 || decodeErr != nil || resp.Status != statusSuccess {
		message := strings.TrimSpace(resp.Message)
		if message == "" {
			message = truncateForLog(strings.TrimSpace(string(raw)), 512)
		}
		if message == "" {
			message = http.StatusText(status)
		}
		saveErr := error(&gameday.SaveFailedError{Resource: resource, Message: message, StatusCode: status})
		if isRetryableStatus(status) {
			saveErr = crerr.Mark(saveErr, errTeamServerTransient)
		}
		c.logger.WarnContext(ctx, "team server rejected save", "resource", resource, "status", status, "message", message)
		return gameday.SaveResult{}, saveErr
	}

	c.logger.InfoContext(ctx, "team server accepted save", "resource", resource, "new_id", resp.NewID)
	return gameday.SaveResult{ID: resp.NewID, Message: resp.Message}, nil
}

// do runs one request through the circuit breaker. Non-2xx statuses are
// returned to the caller; only transport failures and retryable statuses
// count against the breaker.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	if !c.circuitEnabled {
		return c.execute(ctx, method, path, body)
	}

	var (
		status int
		raw    []byte
	)
	err := c.breaker.Do(func() error {
		var err error
		status, raw, err = c.execute(ctx, method, path, body)
		if err == nil && isRetryableStatus(status) {
			return errTeamServerTransient
		}
		return err
	}, func(err error) bool {
		return stderrors.Is(err, errTeamServerTransient)
	})

	switch {
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		c.logger.WarnContext(ctx, "team server circuit breaker rejected request", "state", c.breaker.State())
		return 0, nil, fmt.Errorf("%w: team server is temporarily unavailable", usecase.ErrDependencyUnavailable)
	case err == errTeamServerTransient:
		// The response itself carries the failure; the caller maps the status.
		return status, raw, nil
	}
	return status, raw, err
}

func (c *Client) execute(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, crerr.Wrap(err, "create team server request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionCookie})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		return 0, nil, fmt.Errorf("%w: %w: %s %s: %v", usecase.ErrDependencyUnavailable, errTeamServerTransient, method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	limit := int64(8 << 20)
	if resp.StatusCode/100 != 2 {
		limit = maxErrorBody
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w: read %s response: %v", usecase.ErrDependencyUnavailable, errTeamServerTransient, path, err)
	}
	return resp.StatusCode, raw, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
