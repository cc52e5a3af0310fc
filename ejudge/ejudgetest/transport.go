// Package ejudgetest lets tests exercise the ejudge client end-to-end
// without a live server: a programmable http.RoundTripper with canned
// replies per action and an ordered log of every request it saw.
package ejudgetest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/ejapp/backend/ejudge"
)

// RecordedCall captures one outbound request for later assertions.
type RecordedCall struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Response is a canned reply for one action. A zero Status means 200.
// Body is marshalled to JSON; ejudge.Reply values work as-is.
type Response struct {
	Status int
	Body   any
}

// OK wraps a success payload as a 200 response.
func OK(body any) Response {
	return Response{Status: http.StatusOK, Body: body}
}

// Transport is the mock stand-in for the remote ejudge server.
// RoundTrip records every request, then dispatches on the action query
// parameter. Safe for concurrent use.
type Transport struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []RecordedCall
}

// TransportOption registers a canned response on a new Transport.
type TransportOption func(*Transport)

func WithSubmitRun(resp Response) TransportOption {
	return func(t *Transport) { t.responses[ejudge.ActionSubmitRun] = resp }
}

func WithSubmitRunInput(resp Response) TransportOption {
	return func(t *Transport) { t.responses[ejudge.ActionSubmitRunInput] = resp }
}

func WithGetSubmit(resp Response) TransportOption {
	return func(t *Transport) { t.responses[ejudge.ActionGetSubmit] = resp }
}

func WithGetUser(resp Response) TransportOption {
	return func(t *Transport) { t.responses[ejudge.ActionGetUser] = resp }
}

func NewTransport(opts ...TransportOption) *Transport {
	t := &Transport{responses: map[string]Response{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Calls returns a copy of the recorded requests in arrival order.
func (t *Transport) Calls() []RecordedCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.calls)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// net/http leaves context handling to custom round trippers; honor
	// cancellation the way a real transport would.
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
	}

	// Record unconditionally, before dispatch, so even malformed or
	// unmapped requests show up in the log.
	t.mu.Lock()
	t.calls = append(t.calls, RecordedCall{
		Method: req.Method,
		URL:    cloneURL(req.URL),
		Header: req.Header.Clone(),
		Body:   body,
	})
	t.mu.Unlock()

	query := req.URL.Query()
	if !query.Has("action") {
		return jsonResponse(req, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": map[string]any{"symbol": "missing-action"},
		})
	}
	action := query.Get("action")

	t.mu.Lock()
	resp, ok := t.responses[action]
	t.mu.Unlock()
	if !ok {
		return jsonResponse(req, http.StatusNotFound, map[string]any{
			"ok":    false,
			"error": map[string]any{"symbol": "unhandled-action", "message": action},
		})
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	return jsonResponse(req, status, resp.Body)
}

func jsonResponse(req *http.Request, status int, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal canned response: %w", err)
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode:    status,
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}, nil
}

func cloneURL(u *url.URL) *url.URL {
	clone := *u
	if u.User != nil {
		user := *u.User
		clone.User = &user
	}
	return &clone
}
