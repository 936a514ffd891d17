// Package httpapi implements the questionnaire gateway over the remote REST API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/anketa/internal/core/submission"
	"github.com/example/anketa/internal/ctxutil"
	"github.com/example/anketa/internal/ports/secondary"
	"github.com/example/anketa/internal/version"
)

// DefaultTimeout applies when the client is built with a zero timeout.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 4 << 10

// TokenSource supplies the bearer token for each request. An empty token
// means the request is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client implements secondary.QuestionnaireGateway over HTTP.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new API client rooted at baseURL.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchQuestionnaire returns the raw body of GET /questionnaire/access/{id}.
func (c *Client) FetchQuestionnaire(ctx context.Context, questionnaireID string) ([]byte, error) {
	endpoint := c.baseURL + "/questionnaire/access/" + url.PathEscape(questionnaireID)

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// PostAnswer sends one answer to POST /questionnaire/access/{id}/questions/{qid}/answer.
func (c *Client) PostAnswer(ctx context.Context, questionnaireID string, questionID int, payload submission.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	endpoint := c.baseURL + "/questionnaire/access/" + url.PathEscape(questionnaireID) +
		"/questions/" + strconv.Itoa(questionID) + "/answer"

	resp, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do sends a request and turns non-2xx responses into *secondary.StatusError.
// The caller closes the body of a successful response.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := ctxutil.RequestIDFromContext(ctx)
	if requestID == "" {
		_, requestID = ctxutil.WithNewRequestID(ctx)
	}
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &secondary.StatusError{StatusCode: resp.StatusCode, Body: string(detail)}
	}
	return resp, nil
}

// Ensure Client implements the interface
var _ secondary.QuestionnaireGateway = (*Client)(nil)
