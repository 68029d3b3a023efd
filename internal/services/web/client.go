package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apperrors "github.com/gaurikolhe/roman-numeral-converter/internal/platform/errors"
	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/timeouts"
)

// maxResponseBytes bounds how much of an API response the client reads.
const maxResponseBytes = 64 << 10

// Converter converts user input into a Roman numeral.
type Converter interface {
	Convert(ctx context.Context, number string) (string, error)
}

// APIClient calls the conversion API over HTTP.
type APIClient struct {
	endpoint   *url.URL
	httpClient *http.Client
}

type conversionResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewAPIClient builds a client for the API rooted at baseURL. A nil
// httpClient gets a traced default transport.
func NewAPIClient(baseURL string, httpClient *http.Client) (*APIClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must use http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("api base url %q has no host", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	return &APIClient{
		endpoint:   parsed.JoinPath("romannumeral"),
		httpClient: httpClient,
	}, nil
}

// Convert sends number to the API unchanged. Rejections carry the API's
// response body as their message; transport failures carry the transport
// error text.
func (c *APIClient) Convert(ctx context.Context, number string) (string, error) {
	if c == nil {
		return "", errors.New("api client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	target := *c.endpoint
	target.RawQuery = url.Values{"query": {number}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build conversion request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUpstreamUnavailable, err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUpstreamUnavailable, err.Error(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return "", apperrors.New(apperrors.CodeUpstreamRejected, message)
	}

	var payload conversionResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", apperrors.Wrap(apperrors.CodeUpstreamRejected, "decode conversion response: "+err.Error(), err)
	}
	if payload.Output == "" {
		return "", apperrors.New(apperrors.CodeUpstreamRejected, "conversion response has no output")
	}
	return payload.Output, nil
}
