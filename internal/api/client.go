// Package api talks to the voting frontend service: POST /submit_vote and
// GET /get_chain. One call per operation, no retries.
package api

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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/votechain/internal/ballot"
)

const (
	SubmitVotePath = "/submit_vote"
	GetChainPath   = "/get_chain"
)

// Client is safe for concurrent use; it holds no per-request state.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error is a non-2xx response. Message is the server's "message" field and
// may be empty when the body carried none.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: http %d", e.StatusCode)
	}
	return fmt.Sprintf("api: http %d: %s", e.StatusCode, e.Message)
}

type messageBody struct {
	Message string `json:"message"`
}

type chainBody struct {
	Chain json.RawMessage `json:"chain"`
}

// SubmitVote posts v and returns the server's acceptance message.
func (c *Client) SubmitVote(ctx context.Context, v ballot.Vote) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode vote: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, SubmitVotePath, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out messageBody
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// a body that is not JSON just leaves Message empty
		_ = json.NewDecoder(resp.Body).Decode(&out)
		return "", &Error{StatusCode: resp.StatusCode, Message: out.Message}
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("decode vote response: %w", err)
	}
	return out.Message, nil
}

// FetchChain returns the raw "chain" value. The shape is owned by the server
// and is not interpreted here.
func (c *Client) FetchChain(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, GetChainPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var out messageBody
		_ = json.NewDecoder(resp.Body).Decode(&out)
		return nil, &Error{StatusCode: resp.StatusCode, Message: out.Message}
	}
	var out chainBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chain response: %w", err)
	}
	if len(out.Chain) == 0 {
		return nil, fmt.Errorf("decode chain response: missing chain field")
	}
	return out.Chain, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": reqID,
	})
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("request done")
	return resp, nil
}
