package myshows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Default endpoints for the myshows.me API.
const (
	DefaultRPCURL  = "https://myshows.me/v3/rpc/"
	DefaultAuthURL = "https://myshows.me/api/session"
)

const defaultUserAgent = "MyShowsAPI/1.0"

// Client represents a myshows.me JSON-RPC API client. One Client holds one
// session: login happens lazily on the first call and is never repeated,
// so a new Client is required to re-authenticate.
type Client struct {
	rpcURL   string
	authURL  string
	login    string
	password string

	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	// loginOnce guards the single login attempt. token and loginErr are
	// written inside the Once and only read after it completes.
	loginOnce sync.Once
	loginErr  error
	token     string
}

// NewClient creates a new myshows client. No network traffic happens here;
// the login exchange is deferred until the first RPC.
func NewClient(login, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, fmt.Errorf("%w: login is required", ErrInvalidConfig)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidConfig)
	}

	// Cookie jar carries the session when the service does not hand out
	// a bearer token.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	client := &Client{
		rpcURL:    DefaultRPCURL,
		authURL:   DefaultAuthURL,
		login:     login,
		password:  password,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// ensureAuthenticated guarantees that a login has been attempted exactly
// once before any data-bearing RPC. The caller that performs the attempt
// gets the login error; callers arriving after a failed attempt proceed
// unauthenticated and let the service reject them.
func (c *Client) ensureAuthenticated(ctx context.Context) error {
	var attempted bool
	c.loginOnce.Do(func() {
		attempted = true
		c.loginErr = c.doLogin(ctx)
	})

	if attempted {
		return c.loginErr
	}

	if c.loginErr != nil {
		c.logger.Warn().
			Err(c.loginErr).
			Msg("Proceeding without authentication after earlier login failure")
	}

	return nil
}

// TestConnection performs the login exchange eagerly. It is meant for
// startup diagnostics; regular calls authenticate lazily.
func (c *Client) TestConnection(ctx context.Context) error {
	return c.ensureAuthenticated(ctx)
}

// doLogin sends credentials to the session endpoint and stores the bearer
// token if one is returned. A response without a token is not an error;
// the session cookie set by the endpoint is kept in the jar instead.
func (c *Client) doLogin(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"login":    c.login,
		"password": c.password,
	})
	if err != nil {
		return &LoginError{Message: "failed to encode credentials", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return &LoginError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &LoginError{Message: "network error during login", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &LoginError{Message: "failed to read login response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &LoginError{Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))}
	}

	var login loginResponse
	if err := json.Unmarshal(respBody, &login); err != nil {
		return &LoginError{Message: "failed to decode login response", Err: err}
	}

	if login.Error != nil {
		return &LoginError{Message: login.Error.Message}
	}

	c.token = login.Token

	c.logger.Debug().
		Bool("bearer_token", c.token != "").
		Msg("Logged in to myshows.me")

	return nil
}

// Call sends a single JSON-RPC request and returns the raw result payload.
// The envelope is a single-element array, matching the v3 endpoint. Ids
// are fixed per operation and never used for response matching; each call
// is a synchronous round-trip.
func (c *Client) Call(ctx context.Context, method string, id int, params any) (json.RawMessage, error) {
	if err := c.ensureAuthenticated(ctx); err != nil {
		return nil, err
	}

	if params == nil {
		params = map[string]any{}
	}

	envelope := []rpcRequest{{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	}}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for method %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("authorization2", "Bearer "+c.token)
	}

	c.logger.Debug().
		Str("method", method).
		Int("id", id).
		Msg("Making myshows RPC request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed for method %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	return unwrapResponse(method, respBody)
}

// unwrapResponse extracts the result member from a JSON-RPC response body,
// which the endpoint returns either as a single object or as an array
// containing one.
func unwrapResponse(method string, body []byte) (json.RawMessage, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))

	if len(raw) > 0 && raw[0] == '[' {
		var batch []json.RawMessage
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("failed to parse response for method %s: %w", method, err)
		}
		if len(batch) == 0 {
			return nil, fmt.Errorf("empty response for method %s", method)
		}
		raw = batch[0]
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response for method %s: %w", method, err)
	}

	if envelope.Error != nil {
		return nil, &RPCError{Method: method, Message: envelope.Error.Message, Code: envelope.Error.Code}
	}

	if envelope.Result != nil {
		return envelope.Result, nil
	}

	// Some endpoints answer with a bare payload instead of an envelope.
	return raw, nil
}
