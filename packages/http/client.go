package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/google/uuid"
	"golang.org/x/net/http2"
)

const (
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
	// RequestIDHeader carries a fresh UUID on every request
	RequestIDHeader = "X-Request-Id"
)

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	validateSSL    bool
	proxyURL       string
	defaultHeaders map[string]string
	requestID      func() string
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		timeout:        config.DefaultTimeout,
		validateSSL:    true,
		defaultHeaders: make(map[string]string),
		requestID:      func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		IdleConnTimeout: DefaultIdleConnTimeout,
	}

	// Configure TLS verification
	if !c.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	// Configure proxy if specified
	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err != nil || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid proxy URL %q", c.proxyURL)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	// A custom TLS config turns off the standard library's automatic h2
	// upgrade, so register it explicitly.
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("configuring HTTP/2: %w", err)
	}

	c.httpClient = &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}

	return c, nil
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithDefaultHeaders sets multiple default headers for all requests
func WithDefaultHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithValidateSSL enables or disables SSL certificate validation
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

// WithProxy sets the proxy URL for all requests
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithRequestID replaces the generator for the X-Request-Id header. A nil
// generator disables the header.
func WithRequestID(gen func() string) ClientOption {
	return func(c *Client) {
		c.requestID = gen
	}
}

// Do sends req and reads the whole response body. Any failure to reach the
// server or read its reply is returned as a *TransportError; HTTP error
// statuses are not errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}
	if c.requestID != nil {
		httpReq.Header.Set(RequestIDHeader, c.requestID())
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: fmt.Errorf("reading body: %w", err)}
	}

	return &Response{
		Proto:      httpResp.Proto,
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    orderedHeaders(httpResp.Header),
		Body:       respBody,
		Duration:   duration,
	}, nil
}
