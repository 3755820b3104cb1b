package agent

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

	"github.com/2beens/aquafit/internal/middleware"
	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/pkg"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	UserAgent      = "aquafit-stepagent/1.0"
	defaultTimeout = 10 * time.Second
)

var ErrUnauthorized = errors.New("server rejected the token")

// Client talks to the aquafit backend on behalf of one logged in user.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Push sends a device reconciled record; the server keeps the larger totals
// and answers with the merged record.
func (c *Client) Push(ctx context.Context, rec steps.DailyRecord) (*steps.DailyRecord, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPut,
		c.baseURL+"/steps/"+pkg.FormatDate(rec.RecordDate),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", pkg.ContentType.JSON)

	var merged steps.DailyRecord
	if err := c.do(req, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set(middleware.TokenHeader, c.token)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
