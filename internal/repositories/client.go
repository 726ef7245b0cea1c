package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
)

// DefaultTimeout bounds every upstream request
const DefaultTimeout = 10 * time.Second

// Breaker settings per upstream host
const (
	breakerFailures = 5
	breakerCooldown = 15 * time.Second
	breakerInterval = time.Minute
)

// StatusError is returned when an upstream API answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client issues bounded GET requests against the upstream JSON APIs
type Client struct {
	http     *http.Client
	timeout  time.Duration
	log      *logger.Logger
	validate *validator.Validate

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewClient creates a new Client. A zero timeout selects DefaultTimeout.
func NewClient(httpClient *http.Client, timeout time.Duration, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.StandardLogger()
	}
	return &Client{
		http:     httpClient,
		timeout:  timeout,
		log:      log,
		validate: validator.New(),
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// errCallerGone marks a fetch abandoned because the caller's context ended.
var errCallerGone = errors.New("caller context done")

// breaker returns the circuit breaker of the host serving rawURL.
// An upstream 404 is an answer, not a failure, and neither is a request the caller gave up on.
func (c *Client) breaker(rawURL string) *gobreaker.CircuitBreaker {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[host]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsNotFound(err) || errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warnf(context.Background(), "Upstream %s circuit %s -> %s", name, from, to)
		},
	})
	c.breakers[host] = cb
	return cb
}

// getJSON fetches rawURL and decodes the body into out. While the host's circuit is open
// the request is not sent and gobreaker.ErrOpenState is returned.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	_, err := c.breaker(rawURL).Execute(func() (any, error) {
		err := c.fetch(ctx, rawURL, out)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerGone, err)
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	return err
}

// fetch issues a single GET. The timeout covers the body read.
func (c *Client) fetch(ctx context.Context, rawURL string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// getEnvelope fetches rawURL and decodes the value stored under key.
// The key is matched exactly; found is false when the key is absent or null.
func (c *Client) getEnvelope(ctx context.Context, rawURL, key string, out any) (found bool, err error) {
	var envelope map[string]json.RawMessage
	if err := c.getJSON(ctx, rawURL, &envelope); err != nil {
		return false, err
	}
	raw, ok := envelope[key]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s[%q]: %w", rawURL, key, err)
	}
	return true, nil
}

// valid drops records failing struct validation
func valid[T any](ctx context.Context, c *Client, kind string, items []T) []T {
	kept := items[:0:0]
	for _, item := range items {
		if err := c.validate.Struct(item); err != nil {
			c.log.Warnf(ctx, "Dropping invalid %s record: %v", kind, err)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// validOne reports whether a single record passes struct validation
func validOne[T any](ctx context.Context, c *Client, kind string, item *T) bool {
	if item == nil {
		return false
	}
	if err := c.validate.Struct(item); err != nil {
		c.log.Warnf(ctx, "Invalid %s record: %v", kind, err)
		return false
	}
	return true
}

// UpstreamStates reports the circuit state of every upstream host contacted so far
func (c *Client) UpstreamStates() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	states := make(map[string]string, len(c.breakers))
	for host, cb := range c.breakers {
		states[host] = cb.State().String()
	}
	return states
}
