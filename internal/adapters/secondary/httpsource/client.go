package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"phishing-url-service/internal/config"
	ports "phishing-url-service/internal/core/ports/output"
)

const defaultMaxBytes = 64 << 20

type httpSource struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPSource creates an artifact source that downloads artifacts over
// HTTP(S), e.g. from a release page.
func NewHTTPSource(cfg *config.ArtifactConfig) ports.ArtifactSource {
	timeout := cfg.FetchTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &httpSource{
		client: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
}

func (s *httpSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/octet-stream, application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"status":         resp.StatusCode,
		"content_length": resp.ContentLength,
	}).Debug("artifact download response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("artifact exceeds %d bytes", s.maxBytes)
	}
	return data, nil
}
