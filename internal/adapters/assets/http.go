package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

const (
	// maxAssetSize bounds a single canvas or font download.
	maxAssetSize = 32 << 20
	// maxErrorBodySize bounds how much of an error body is read.
	maxErrorBodySize = 1 << 20
)

var (
	_ ports.AssetSource   = (*HTTP)(nil)
	_ ports.HealthChecker = (*HTTP)(nil)
)

// HTTP fetches assets from a remote asset server through the instrumented
// client, so downloads get retries, the circuit breaker and trace spans.
type HTTP struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewHTTP returns a source backed by client.
func NewHTTP(client *httpclient.Client, logger *slog.Logger) *HTTP {
	return &HTTP{client: client, logger: logger}
}

// Name identifies the asset server in readiness reports.
func (s *HTTP) Name() string { return s.client.Name() }

// HealthCheck reports the asset server's circuit breaker state.
func (s *HTTP) HealthCheck(ctx context.Context) error { return s.client.HealthCheck(ctx) }

// Fetch downloads ref. Non-200 responses are mapped to domain errors.
func (s *HTTP) Fetch(ctx context.Context, ref string) ([]byte, error) {
	resp, err := s.client.Get(ctx, ref)
	if resp != nil {
		defer s.closeBody(ctx, resp)
	}
	if err != nil {
		// Exhausted retries on a retryable status still hand back the last
		// response; its status says more than the retry error.
		if resp != nil {
			return nil, translateStatus(ref, resp)
		}
		s.logger.ErrorContext(ctx, "asset request failed",
			slog.String("asset", ref),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching asset %q: %w: %w", ref, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "unexpected asset status",
			slog.String("asset", ref),
			slog.Int("status", resp.StatusCode),
		)
		return nil, translateStatus(ref, resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading asset %q: %w", ref, err)
	}
	if len(data) > maxAssetSize {
		return nil, fmt.Errorf("asset %q exceeds %d bytes", ref, maxAssetSize)
	}
	return data, nil
}

func (s *HTTP) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

// problemDetail is the subset of an RFC 9457 body the asset server sends.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateStatus maps an asset server response to a domain error.
func translateStatus(ref string, resp *http.Response) error {
	detail := readDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("asset %q: %s: %w", ref, detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("asset %q: %s: %w", ref, detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("asset %q: unexpected status %d: %s", ref, resp.StatusCode, detail)
	}
}

func readDetail(resp *http.Response) string {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}
	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return ""
	}
	return pd.Detail
}
