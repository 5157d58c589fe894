package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxRetries     = 3
	DefaultBackoffBase    = time.Second
	DefaultAttemptTimeout = 30 * time.Second

	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 8 << 20
	tracerName       = "github.com/bnema/lms-cli/internal/adapters/httpapi"
	attemptSpanName  = "lms.api.attempt"
)

type Config struct {
	BaseURL           string
	MaxRetries        int
	BackoffBase       time.Duration
	AttemptTimeout    time.Duration
	RequestsPerSecond float64
	UserAgent         string
	HTTPClient        *http.Client
	Logger            *slog.Logger
	TracerProvider    trace.TracerProvider
}

// Dispatcher sends API requests with default JSON headers, per-attempt
// timeouts and exponential backoff on 5xx responses and transport failures.
type Dispatcher struct {
	baseURL        string
	maxRetries     int
	backoffBase    time.Duration
	attemptTimeout time.Duration
	userAgent      string
	client         *http.Client
	logger         *slog.Logger
	tracer         trace.Tracer
	limiter        *rate.Limiter

	sleep        func(ctx context.Context, d time.Duration) error
	newRequestID func() string
}

var _ ports.Dispatcher = (*Dispatcher)(nil)

func NewDispatcher(cfg Config) (*Dispatcher, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		baseURL:        baseURL,
		maxRetries:     cfg.MaxRetries,
		backoffBase:    cfg.BackoffBase,
		attemptTimeout: cfg.AttemptTimeout,
		userAgent:      strings.TrimSpace(cfg.UserAgent),
		client:         cfg.HTTPClient,
		logger:         cfg.Logger,
		sleep:          sleepContext,
		newRequestID:   uuid.NewString,
	}
	if d.maxRetries <= 0 {
		d.maxRetries = DefaultMaxRetries
	}
	if d.backoffBase <= 0 {
		d.backoffBase = DefaultBackoffBase
	}
	if d.attemptTimeout <= 0 {
		d.attemptTimeout = DefaultAttemptTimeout
	}
	if d.client == nil {
		d.client = http.DefaultClient
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}

	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	d.tracer = provider.Tracer(tracerName)

	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return d, nil
}

func (d *Dispatcher) BaseURL() string {
	return d.baseURL
}

func (d *Dispatcher) Send(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	return d.SendAttempts(ctx, req, d.maxRetries)
}

// SendAttempts issues req at most maxAttempts times. A ServerError outcome is
// returned without error once attempts run out; transport failures surface as
// *domain.NetworkError.
func (d *Dispatcher) SendAttempts(ctx context.Context, req domain.Request, maxAttempts int) (domain.Outcome, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint, err := d.resolveURL(req.Path)
	if err != nil {
		return domain.Outcome{}, err
	}
	if _, err := http.NewRequestWithContext(ctx, method, endpoint, nil); err != nil {
		return domain.Outcome{}, fmt.Errorf("build request %s %s: %w", method, req.Path, err)
	}

	header := d.buildHeader(req.Header)
	requestID := header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = d.newRequestID()
		header.Set(RequestIDHeader, requestID)
	}

	call := attemptCall{
		method:      method,
		path:        req.Path,
		endpoint:    endpoint,
		header:      header,
		body:        req.Body,
		requestID:   requestID,
		maxAttempts: maxAttempts,
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Outcome{}, fmt.Errorf("%s %s: %w", method, req.Path, err)
		}
		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return domain.Outcome{}, fmt.Errorf("%s %s: wait for rate limiter: %w", method, req.Path, err)
			}
		}

		call.attempt = attempt
		reportProgress(ctx, Progress{Method: method, Path: req.Path, Attempt: attempt, MaxAttempts: maxAttempts})
		outcome, attemptErr := d.do(ctx, call)

		if attemptErr != nil && ctx.Err() != nil {
			return domain.Outcome{}, fmt.Errorf("%s %s: %w", method, req.Path, ctx.Err())
		}
		if attemptErr == nil && outcome.Kind != domain.OutcomeServerError {
			return outcome, nil
		}
		if attempt >= maxAttempts {
			if attemptErr != nil {
				return domain.Outcome{}, &domain.NetworkError{BaseURL: d.baseURL, Attempts: attempt, Err: attemptErr}
			}
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return domain.Outcome{}, fmt.Errorf("%s %s: %w", method, req.Path, err)
		}
		wait := d.backoff(attempt)
		reportProgress(ctx, Progress{Method: method, Path: req.Path, Attempt: attempt, MaxAttempts: maxAttempts, Backoff: wait})
		if err := d.sleep(ctx, wait); err != nil {
			return domain.Outcome{}, fmt.Errorf("%s %s: retry cancelled: %w", method, req.Path, err)
		}
	}
}

type attemptCall struct {
	method      string
	path        string
	endpoint    string
	header      http.Header
	body        []byte
	requestID   string
	attempt     int
	maxAttempts int
}

func (d *Dispatcher) do(ctx context.Context, call attemptCall) (domain.Outcome, error) {
	ctx, span := d.tracer.Start(ctx, attemptSpanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", call.method),
			attribute.String("url.full", call.endpoint),
			attribute.String("lms.request_id", call.requestID),
			attribute.Int("lms.attempt", call.attempt),
			attribute.Int("lms.max_attempts", call.maxAttempts),
		),
	)
	defer span.End()

	requestCtx, cancel := d.requestContext(ctx)
	defer cancel()

	var body io.Reader
	if len(call.body) > 0 {
		body = bytes.NewReader(call.body)
	}

	start := time.Now()
	outcome, err := d.roundTrip(requestCtx, call, body)
	elapsed := time.Since(start)

	attrs := []slog.Attr{
		slog.String("request_id", call.requestID),
		slog.Int("attempt", call.attempt),
		slog.Int("max_attempts", call.maxAttempts),
		slog.String("method", call.method),
		slog.String("path", call.path),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.LogAttrs(ctx, slog.LevelWarn, "api attempt failed",
			append(attrs, slog.String("outcome", "network_failure"), slog.String("error", err.Error()))...)
		return domain.Outcome{}, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", outcome.Status))
	level := slog.LevelDebug
	if outcome.Kind == domain.OutcomeServerError {
		span.SetStatus(codes.Error, outcome.StatusText)
		level = slog.LevelWarn
	}
	d.logger.LogAttrs(ctx, level, "api attempt",
		append(attrs, slog.String("outcome", outcome.Kind.String()), slog.Int("status", outcome.Status))...)

	return outcome, nil
}

func (d *Dispatcher) roundTrip(ctx context.Context, call attemptCall, body io.Reader) (domain.Outcome, error) {
	httpReq, err := http.NewRequestWithContext(ctx, call.method, call.endpoint, body)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header = call.header.Clone()

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return domain.Outcome{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("read response body: %w", err)
	}

	return domain.Outcome{
		Kind:       domain.ClassifyStatus(resp.StatusCode),
		Method:     call.method,
		Path:       call.path,
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header.Clone(),
		Body:       data,
		Attempts:   call.attempt,
		RequestID:  call.requestID,
	}, nil
}

// buildHeader layers caller headers over the JSON defaults and drops an
// Authorization header that carries no token.
func (d *Dispatcher) buildHeader(callerHeader http.Header) http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	if d.userAgent != "" {
		header.Set("User-Agent", d.userAgent)
	}

	for key, values := range callerHeader {
		header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}

	auth := strings.TrimSpace(header.Get("Authorization"))
	if auth == "" || strings.EqualFold(auth, "Bearer") {
		header.Del("Authorization")
	}

	return header
}

func (d *Dispatcher) resolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("api path is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}

	return strings.TrimRight(d.baseURL, "/") + "/" + strings.TrimLeft(path, "/"), nil
}

func (d *Dispatcher) backoff(attempt int) time.Duration {
	return d.backoffBase * time.Duration(int64(1)<<attempt)
}

func (d *Dispatcher) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, d.attemptTimeout)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(raw, "/"), nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return text
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
