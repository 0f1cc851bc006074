package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Timeout is the hard deadline for one generateContent call.
const Timeout = 29 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the transport client; its Timeout is the call deadline.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: Timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configured reports ErrMissingAPIKey when no credential was supplied.
func (c *Client) Configured() error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// GenerateContent posts req to model once and returns the raw 2xx body.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) ([]byte, error) {
	if err := c.Configured(); err != nil {
		return nil, err
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logrus.WithFields(logrus.Fields{"model": model, "bytes": len(b)}).Debug("[gemini] request")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, wrapTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"model":  model,
			"status": resp.StatusCode,
			"body":   Snippet(string(body)),
		}).Warn("[gemini] non-success status")
		return nil, newUpstreamError(resp.StatusCode, body)
	}

	return body, nil
}

// FirstCandidateText returns candidates[0].content.parts[0].text.
func FirstCandidateText(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", &MalformedResponseError{Reason: "body is not valid JSON"}
	}
	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if !text.Exists() {
		return "", &MalformedResponseError{Reason: "no text in first candidate"}
	}
	if text.Type != gjson.String {
		return "", &MalformedResponseError{Reason: "first candidate text is not a string"}
	}
	return text.String(), nil
}

func wrapTransport(err error) error {
	// url.Error carries the full URL, including ?key=
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = strings.SplitN(ue.URL, "?", 2)[0]
	}
	if isTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("gemini: request failed: %w", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Snippet shortens upstream text for log fields.
func Snippet(s string) string {
	if len(s) > 300 {
		return s[:300] + "..."
	}
	return s
}
