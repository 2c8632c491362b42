// Package darwinbox is a client for the Darwinbox HR REST API. Every
// operation posts one fixed JSON payload with shared basic-auth credentials
// and a per-operation API key, and returns the uniform result envelope.
package darwinbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"hragent/pkg/config"
)

const (
	defaultTimeout   = 30 * time.Second
	directoryTimeout = 60 * time.Second
	infoTimeout      = 15 * time.Second

	// maxErrorDetail caps how much of a remote error body is surfaced.
	maxErrorDetail = 500

	invalidParams = "Invalid input parameters. Check employee_no and date formats (YYYY-MM-DD)."
)

// Client calls the Darwinbox API. Construct once with New and share; all
// methods are safe for sequential reuse and never return a Go error.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client

	// timeoutOverride shrinks per-operation timeouts; tests only.
	timeoutOverride time.Duration
}

func New(cfg *config.Config) *Client {
	return &Client{cfg: cfg, httpClient: &http.Client{}}
}

// call posts the payload and wraps the remote JSON in a success envelope.
func (c *Client) call(ctx context.Context, op, path string, timeout time.Duration, payload map[string]any) json.RawMessage {
	raw, errEnv := c.do(ctx, op, path, timeout, payload)
	if errEnv != nil {
		return errEnv
	}
	return Success(raw)
}

// do executes the POST and returns either the raw remote JSON or a non-nil
// error envelope. Exactly one of the two is set.
func (c *Client) do(ctx context.Context, op, path string, timeout time.Duration, payload map[string]any) (json.RawMessage, json.RawMessage) {
	if c.timeoutOverride > 0 {
		timeout = c.timeoutOverride
	}
	slog.Debug("darwinbox call", "op", op, "path", path)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, Failure("An unexpected error occurred: " + err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Domain+path, bytes.NewReader(body))
	if err != nil {
		return nil, Failure("An unexpected error occurred: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			slog.Warn("darwinbox timeout", "op", op)
			return nil, Failure("API Error: Request timed out")
		}
		slog.Warn("darwinbox request failed", "op", op, "error", err)
		return nil, Failure("An unexpected error occurred: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, Failure("API Error: Request timed out")
		}
		return nil, Failure("An unexpected error occurred: " + err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("darwinbox api error", "op", op, "status", resp.StatusCode)
		return nil, failureDetails(fmt.Sprintf("API Error: %d", resp.StatusCode), truncate(string(raw), maxErrorDetail))
	}
	if !json.Valid(raw) {
		return nil, Failure("An unexpected error occurred: response is not valid JSON")
	}
	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func validID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// trimAll trims every identifier and never returns nil, so payload lists
// always marshal as JSON arrays.
func trimAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
