// Package artifact loads the aggregated day array, either over HTTP from the
// published site or straight from the build output on disk.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"photo_archive/internal/domain"
)

// Config holds HTTP source configuration.
type Config struct {
	URL            string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// HTTPSource fetches the artifact from its published URL.
type HTTPSource struct {
	httpClient *http.Client
	url        string

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewHTTPSource(cfg Config, logger *slog.Logger) *HTTPSource {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:            cfg.URL,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "artifact"),
	}
}

// Load fetches and decodes the day array. The caller falls back to the demo
// dataset on any error.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.DayRecord, error) {
	var days []domain.DayRecord
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		days, err = s.doRequest(ctx)
		if err == nil {
			return days, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("artifact fetch failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *HTTPSource) doRequest(ctx context.Context) ([]domain.DayRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var days []domain.DayRecord
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	return days, nil
}

func (s *HTTPSource) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
