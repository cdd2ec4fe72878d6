package etherpad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Method is the verb an operation declares. It documents whether an
// operation reads or mutates; the transport always sends POST.
type Method string

const (
	MethodGET  Method = http.MethodGet
	MethodPOST Method = http.MethodPost
)

// Args holds the named scalar arguments of one call.
type Args map[string]any

const apiKeyParam = "apikey"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 32 << 20

// Client calls the HTTP API of an Etherpad server.
// It is safe for concurrent use; its configuration never changes after New.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  hclog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Every call is still
// bounded by Timeout; a shorter client timeout also applies.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithLogger sets a logger for per-call debug output. Without it the client
// logs nothing.
func WithLogger(l hclog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithBaseURL sets the API root, e.g. "https://pad.example.com/api".
// Without it the client uses DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		cl.baseURL = u
	}
}

// New creates a client that authenticates with apiKey. It fails with
// KindInvalidConfiguration when the base URL is not an absolute URL.
func New(apiKey string, opts ...Option) (*Client, error) {
	cl := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http: &http.Client{
			Timeout: Timeout,
		},
		logger: hclog.NewNullLogger(),
	}
	for _, o := range opts {
		o(cl)
	}

	baseURL, err := resolveBaseURL(cl.baseURL)
	if err != nil {
		return nil, err
	}
	cl.baseURL = baseURL
	cl.logger = cl.logger.Named("etherpad")

	return cl, nil
}

// NewFromConfig creates a client from cfg. An empty cfg.BaseURL selects
// DefaultBaseURL.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL != "" {
		opts = append([]Option{WithBaseURL(cfg.BaseURL)}, opts...)
	}
	return New(cfg.APIKey, opts...)
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint builds {baseURL}/{APIVersion}/{op}.
func (c *Client) endpoint(op Operation) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, APIVersion, op)
}

// call performs one request and returns the envelope's data.
//
// All operations are sent as POST with a JSON body, including the ones that
// declare MethodGET.
func (c *Client) call(ctx context.Context, op Operation, args Args, method Method) (json.RawMessage, error) {
	name := string(op)

	body := make(Args, len(args)+1)
	for k, v := range args {
		body[k] = v
	}
	body[apiKeyParam] = c.apiKey

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, newError(KindTransport, name, "failed to marshal request body", err)
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(op), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, newError(KindTransport, name, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log := c.logger.With("op", name, "method", string(method), "request_id", uuid.NewString())
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err, "duration", time.Since(start))
		return nil, newError(KindTransport, name, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		log.Debug("reading response failed", "error", err, "duration", time.Since(start))
		return nil, newError(KindTransport, name, "failed to read response", err)
	}
	if len(respBody) > maxResponseBytes {
		log.Debug("response too large", "limit", maxResponseBytes, "duration", time.Since(start))
		return nil, newError(KindTransport, name, "failed to read response", ErrResponseTooLarge)
	}

	log.Debug("response received",
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"duration", time.Since(start),
	)

	env, err := decodeEnvelope(name, respBody)
	if err != nil {
		return nil, err
	}
	return classify(name, env)
}

// Call performs op with args and returns its data untransformed, or nil when
// the server sent none. It is the escape hatch for payload fields the typed
// methods do not decode. args is not modified.
func (c *Client) Call(ctx context.Context, op Operation, args Args) (json.RawMessage, error) {
	method := MethodPOST
	if info, ok := Lookup(op); ok {
		method = info.Method
	}
	return c.call(ctx, op, args, method)
}

// callInto performs call and decodes a non-nil payload into out.
func (c *Client) callInto(ctx context.Context, op Operation, args Args, method Method, out any) error {
	data, err := c.call(ctx, op, args, method)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newError(KindMalformedEnvelope, string(op), "failed to decode data", err)
	}
	return nil
}
