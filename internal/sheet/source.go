// Package sheet retrieves the project spreadsheet as CSV, over HTTP or from
// a local export.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

// maxBodyBytes caps how much of an export we are willing to read.
const maxBodyBytes = 16 << 20

// Source yields the raw CSV export.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Describe names the source for logs and snapshot records.
	Describe() string
}

// NewSource picks a file source when cfg.File is set, otherwise an HTTP
// source for cfg.ExportURL().
func NewSource(cfg Config, observer Observer) (Source, error) {
	switch {
	case cfg.File != "":
		return NewFileSource(cfg.File, observer), nil
	case cfg.ExportURL() != "":
		return NewHTTPSource(cfg, observer), nil
	default:
		return nil, ErrNotConfigured
	}
}

// httpSource downloads the export with a single timed GET.
type httpSource struct {
	cfg      Config
	url      string
	http     *http.Client
	observer Observer
	maxBytes int64
}

// NewHTTPSource creates a Source for cfg.ExportURL(). Requests are not
// retried.
func NewHTTPSource(cfg Config, observer Observer) Source {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpSource{
		cfg: cfg,
		url: cfg.ExportURL(),
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		maxBytes: maxBodyBytes,
	}
}

func (s *httpSource) Describe() string { return s.url }

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()

	timeout := time.Duration(s.cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(DefaultConfig().TimeoutMs) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := s.doRequest(ctx)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrTimeout, timeout)
		} else if isConnectionError(err) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.observer.OnFetch(FetchEvent{Source: s.url, LatencyMs: latency, ErrorCode: errorCode(err)})
		return nil, err
	}

	s.observer.OnFetch(FetchEvent{Source: s.url, Bytes: len(body), LatencyMs: latency, Success: true})
	return body, nil
}

func (s *httpSource) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	// A truncated export would parse as a shorter, valid one.
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, s.maxBytes)
	}
	return body, nil
}

// fileSource reads a CSV export from disk.
type fileSource struct {
	path     string
	observer Observer
}

// NewFileSource creates a Source that reads path on every Fetch.
func NewFileSource(path string, observer Observer) Source {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &fileSource{path: path, observer: observer}
}

func (s *fileSource) Describe() string { return s.path }

func (s *fileSource) Fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = fmt.Errorf("reading %s: %w", s.path, err)
		s.observer.OnFetch(FetchEvent{Source: s.path, LatencyMs: latency, ErrorCode: errorCode(err)})
		return nil, err
	}

	s.observer.OnFetch(FetchEvent{Source: s.path, Bytes: len(data), LatencyMs: latency, Success: true})
	return data, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrTooLarge):
		return "TOO_LARGE"
	case errors.Is(err, os.ErrNotExist):
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}
