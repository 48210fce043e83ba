package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"profix/internal/config"
	"profix/internal/logging"
	"profix/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("profix.internal.api")

const (
	headerRequestID = "X-Request-ID"
	maxResponseBody = 8 << 20
)

// Client is the single configured adapter for the PHP backend. It keeps no
// per-request state, so one instance is shared by every controller.
type Client struct {
	baseURL      string
	apiKey       string
	headerAPIKey string
	userAgent    string
	httpClient   *http.Client
	limiter      *routeLimiter
	logger       *zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient constructs a backend client from config. The base URL is used
// as-is apart from a trailing slash; routes are appended to it.
func NewClient(cfg config.BackendConfig, logger *zerolog.Logger) *Client {
	return newClient(cfg.BaseURL, cfg, logger, "api")
}

func newClient(base string, cfg config.BackendConfig, logger *zerolog.Logger, component string) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	header := cfg.HeaderAPIKey
	if header == "" {
		header = "x-api-key"
	}
	return &Client{
		baseURL:      base,
		apiKey:       cfg.APIKey,
		headerAPIKey: header,
		userAgent:    cfg.UserAgent,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      newRouteLimiter(cfg.RateLimit),
		logger:       logging.Component(logger, component),
		cacheTTL:     cfg.CatalogTTL,
	}
}

// UseRedisCache configures optional Redis caching for the service catalog.
// Nothing else is cached: availability, bookings and profiles are always
// read from the backend.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	if ttl > 0 {
		c.cacheTTL = ttl
	}
}

// ImageURL resolves a stored image path against the backend base URL.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + strings.TrimPrefix(path, "/")
}

type requestBuilder func(ctx context.Context, endpoint string) (*http.Request, error)

type responseDecoder func(route string, data []byte) (envelope, error)

func (c *Client) get(ctx context.Context, route string, required ...string) (envelope, error) {
	build := func(ctx context.Context, endpoint string) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	}
	return c.call(ctx, route, build, successEnvelope(required...))
}

func (c *Client) post(ctx context.Context, route string, body any, required ...string) (envelope, error) {
	return c.postWith(ctx, route, body, successEnvelope(required...))
}

func (c *Client) postWith(ctx context.Context, route string, body any, decode responseDecoder) (envelope, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, parseError(route, fmt.Errorf("encode request: %w", err))
	}
	build := func(ctx context.Context, endpoint string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
	return c.call(ctx, route, build, decode)
}

// postFor posts body and decodes the required payload key into T.
func postFor[T any](ctx context.Context, c *Client, route string, body any, key string) (T, error) {
	var out T
	env, err := c.post(ctx, route, body, key)
	if err != nil {
		return out, err
	}
	return payload[T](env, route, key)
}

// getFor is postFor for the GET listing routes.
func getFor[T any](ctx context.Context, c *Client, route, key string) (T, error) {
	var out T
	env, err := c.get(ctx, route, key)
	if err != nil {
		return out, err
	}
	return payload[T](env, route, key)
}

// payload decodes key into a fresh T and checks the records in it. On any
// failure the zero T is returned, never a half-filled one.
func payload[T any](env envelope, route, key string) (T, error) {
	var out, zero T
	if err := env.decode(route, key, &out); err != nil {
		return zero, err
	}
	if err := checkRecords(route, key, out); err != nil {
		return zero, err
	}
	return out, nil
}

// call performs exactly one HTTP exchange. There is no retry: every failure
// goes back to the caller, which decides what to show.
func (c *Client) call(ctx context.Context, route string, build requestBuilder, decode responseDecoder) (env envelope, err error) {
	ctx, span := tracer.Start(ctx, route, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	status := 0
	defer func() {
		c.finish(span, route, status, time.Since(start), err)
	}()

	var data []byte
	data, status, err = c.roundTrip(ctx, route, build)
	if err != nil {
		return nil, err
	}
	return decode(route, data)
}

func (c *Client) roundTrip(ctx context.Context, route string, build requestBuilder) ([]byte, int, error) {
	if err := c.limiter.wait(ctx, route); err != nil {
		return nil, 0, networkError(route, 0, err)
	}

	req, err := build(ctx, c.baseURL+route)
	if err != nil {
		return nil, 0, networkError(route, 0, err)
	}
	c.addHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, networkError(route, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, networkError(route, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, networkError(route, resp.StatusCode, fmt.Errorf("http %d", resp.StatusCode))
	}
	return data, resp.StatusCode, nil
}

func (c *Client) finish(span trace.Span, route string, status int, elapsed time.Duration, err error) {
	outcome := outcomeOf(err)
	metrics.ObserveCall(route, outcome, elapsed)

	span.SetAttributes(
		attribute.Int("http.status_code", status),
		attribute.String("profix.outcome", outcome),
	)

	switch KindOf(err) {
	case KindUnknown:
		c.logger.Debug().
			Str("route", route).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("backend call")
	case KindBusiness:
		msg, _ := BusinessMessage(err)
		c.logger.Info().
			Str("route", route).
			Str("message", msg).
			Dur("duration", elapsed).
			Msg("backend rejected request")
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn().
			Err(err).
			Str("route", route).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("backend call failed")
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	switch KindOf(err) {
	case KindBusiness:
		return metrics.OutcomeBusiness
	case KindParse:
		return metrics.OutcomeParse
	default:
		return metrics.OutcomeNetwork
	}
}

func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set(c.headerAPIKey, c.apiKey)
	}
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
