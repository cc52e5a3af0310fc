// Package ejudge is a typed client for the subset of the ejudge HTTP
// API this backend relies on: submit-run, submit-run-input, get-submit
// and get-user. Requests are validated before anything touches the
// network; replies are decoded strictly against the envelope contract.
package ejudge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ejapp/backend/logger"
)

const defaultTimeout = 10 * time.Second

// Client calls the ejudge API at one endpoint with one API token.
// A Client is safe for concurrent use; each call's request/response
// cycle is independent.
type Client struct {
	endpoint  string
	authz     string
	httpc     *http.Client
	ownClient bool
}

type clientOptions struct {
	timeout   time.Duration
	transport http.RoundTripper
	httpc     *http.Client
}

// Option configures a Client at construction.
type Option func(*clientOptions)

// WithTimeout sets the network timeout of the client-owned http.Client.
// Ignored when an external client is injected with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTransport plugs a custom low-level transport into the
// client-owned http.Client. Mutually exclusive with WithHTTPClient.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

// WithHTTPClient makes the Client use an externally managed
// http.Client. The caller keeps ownership; Close becomes a no-op.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpc = c }
}

// New builds a client for the ejudge API endpoint. The token is carried
// on every request as "Bearer AQAA<token>"; the fixed AQAA prefix is
// part of the remote API contract.
func New(endpoint, apiToken string, opts ...Option) (*Client, error) {
	o := clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpc != nil && o.transport != nil {
		return nil, errors.New("ejudge: pass either a transport or a pre-configured http client, not both")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("ejudge: invalid endpoint: %w", err)
	}

	c := &Client{
		endpoint: endpoint,
		authz:    "Bearer AQAA" + apiToken,
	}
	if o.httpc != nil {
		c.httpc = o.httpc
	} else {
		c.httpc = &http.Client{Timeout: o.timeout, Transport: o.transport}
		c.ownClient = true
	}
	return c, nil
}

// Close releases the connection pool if the client owns it.
func (c *Client) Close() {
	if c.ownClient {
		c.httpc.CloseIdleConnections()
	}
}

// Scoped runs fn against a fresh client and closes it when fn returns,
// so the connection pool cannot leak on any path.
func Scoped(endpoint, apiToken string, fn func(*Client) error, opts ...Option) error {
	c, err := New(endpoint, apiToken, opts...)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// SubmitRun submits a solution for evaluation and returns the created
// run identifier.
func (c *Client) SubmitRun(ctx context.Context, req SubmitRunRequest) (*SubmitRunReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := c.post(ctx, ActionSubmitRun, encodeSubmitRun(&req))
	if err != nil {
		return nil, err
	}
	return decodeReply[SubmitRunResult](ActionSubmitRun, body)
}

// SubmitRunInput submits a solution to be run against custom stdin.
func (c *Client) SubmitRunInput(ctx context.Context, req SubmitRunInputRequest) (*SubmitRunInputReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := c.post(ctx, ActionSubmitRunInput, encodeSubmitRunInput(&req))
	if err != nil {
		return nil, err
	}
	return decodeReply[SubmitRunInputResult](ActionSubmitRunInput, body)
}

// GetSubmit fetches the status document of one submit.
func (c *Client) GetSubmit(ctx context.Context, req GetSubmitRequest) (*GetSubmitReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, ActionGetSubmit, req.queryParams())
	if err != nil {
		return nil, err
	}
	return decodeReply[SubmitDetails](ActionGetSubmit, body)
}

// GetUser fetches a user profile by numeric id or login.
func (c *Client) GetUser(ctx context.Context, req GetUserRequest) (*GetUserReply, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, ActionGetUser, req.queryParams())
	if err != nil {
		return nil, err
	}
	return decodeReply[UserProfile](ActionGetUser, body)
}

func (c *Client) post(ctx context.Context, action string, payload *formPayload) ([]byte, error) {
	body, contentType, err := payload.encodeBody()
	if err != nil {
		return nil, &ClientError{Action: action, Reason: "failed to encode request body", Err: err}
	}
	return c.call(ctx, http.MethodPost, action, nil, body, contentType)
}

func (c *Client) get(ctx context.Context, action string, params url.Values) ([]byte, error) {
	return c.call(ctx, http.MethodGet, action, params, nil, "")
}

// call performs one HTTP exchange: query assembly, auth header, status
// check, body read. Every request carries json=1 and action=<action> in
// the query string regardless of verb.
func (c *Client) call(ctx context.Context, method, action string, params url.Values, body io.Reader, contentType string) ([]byte, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &ClientError{Action: action, Reason: "invalid endpoint URL", Err: err}
	}
	query := u.Query()
	query.Set("json", "1")
	query.Set("action", action)
	for name, values := range params {
		for _, v := range values {
			query.Add(name, v)
		}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &ClientError{Action: action, Reason: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", c.authz)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.FromContext(ctx).Debug("calling ejudge", "action", action, "method", method)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &ClientError{Action: action, Reason: "error communicating with ejudge", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{Action: action, Reason: "failed to read response body", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ClientError{
			Action: action,
			Status: resp.StatusCode,
			Reason: fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode),
		}
	}
	return data, nil
}

// decodeReply validates the body against the envelope contract for the
// action and returns the typed reply, a ReplyError on ok:false, or a
// ClientError when the body is not a valid envelope at all.
func decodeReply[T any](action string, data []byte) (*Reply[T], error) {
	if !json.Valid(data) {
		return nil, &ClientError{Action: action, Reason: "response did not contain valid JSON payload"}
	}
	var reply Reply[T]
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, &ClientError{Action: action, Reason: "response does not match the expected reply shape", Err: err}
	}
	if !reply.OK {
		env := reply.Envelope
		if env.Error == nil {
			env.Error = unknownErrorBlock()
		}
		return nil, &ReplyError{Action: action, Reply: env}
	}
	if reply.Error != nil {
		return nil, &ClientError{Action: action, Reason: "reply marked ok but carries an error block"}
	}
	if reply.Result == nil {
		return nil, &ClientError{Action: action, Reason: "reply is missing its result payload"}
	}
	return &reply, nil
}
