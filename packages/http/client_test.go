package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/hitpie/packages/core/command"
	"github.com/abdul-hamid-achik/hitpie/packages/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...ClientOption) *Client {
	t.Helper()
	c, err := NewClient(opts...)
	require.NoError(t, err)
	return c
}

func doGet(t *testing.T, c *Client, url string, headers map[string]string) (*Response, error) {
	t.Helper()
	return c.Do(context.Background(), &Request{Method: http.MethodGet, URL: url, Headers: headers})
}

func doPost(t *testing.T, c *Client, url string, body []byte, headers map[string]string) (*Response, error) {
	t.Helper()
	return c.Do(context.Background(), &Request{Method: http.MethodPost, URL: url, Body: body, Headers: headers})
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := doGet(t, client, server.URL+"/test", nil)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "HTTP/1.1", resp.Proto)
	assert.Equal(t, "200 OK", resp.Status)
	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.True(t, resp.IsJSON())
	assert.Contains(t, resp.BodyString(), "hello")
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 123}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := doPost(t, client, server.URL, []byte(`{"name": "test"}`), map[string]string{
		"Content-Type": "application/json",
	})

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Contains(t, resp.BodyString(), "123")
}

func TestClient_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	resp, err := doGet(t, newTestClient(t), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.True(t, resp.IsClientError())
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, config.DefaultTimeout, newTestClient(t).httpClient.Timeout)
	assert.Equal(t, time.Second, newTestClient(t, WithTimeout(time.Second)).httpClient.Timeout)
}

func TestClient_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, WithTimeout(50*time.Millisecond))
	_, err := doGet(t, client, server.URL, nil)

	require.Error(t, err)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout())
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := doGet(t, newTestClient(t), url, nil)

	require.Error(t, err)
	assert.True(t, IsTransportError(err))
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "hitpie", r.Header.Get("X-Powered-By"))
		assert.Equal(t, "fixed-id", r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t,
		WithDefaultHeaders(map[string]string{"User-Agent": "custom-agent"}),
		WithDefaultHeader("X-Powered-By", "hitpie"),
		WithRequestID(func() string { return "fixed-id" }),
	)
	resp, err := doGet(t, client, server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_RequestIDIsUnique(t *testing.T) {
	var (
		mu  sync.Mutex
		ids []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		ids = append(ids, r.Header.Get(RequestIDHeader))
	}))
	defer server.Close()

	client := newTestClient(t)
	for i := 0; i < 2; i++ {
		_, err := doGet(t, client, server.URL, nil)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, ids, 2)
	assert.Len(t, ids[0], 36)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestClient_RequestHeadersOverrideDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "per-request", r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	client := newTestClient(t, WithDefaultHeader("User-Agent", "default"))
	_, err := doGet(t, client, server.URL, map[string]string{"User-Agent": "per-request"})
	require.NoError(t, err)
}

func TestClient_InsecureTLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("secure"))
	}))
	defer server.Close()

	_, err := doGet(t, newTestClient(t), server.URL, nil)
	assert.True(t, IsTransportError(err), "self-signed certificate should be rejected")

	resp, err := doGet(t, newTestClient(t, WithValidateSSL(false)), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "secure", resp.BodyString())
}

func TestNewClient_InvalidProxy(t *testing.T) {
	_, err := NewClient(WithProxy("::not a url"))
	assert.Error(t, err)
}

func TestResponse_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-B", "2")
		w.Header().Add("X-A", "first")
		w.Header().Add("X-A", "second")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}))
	defer server.Close()

	resp, err := doGet(t, newTestClient(t), server.URL, nil)
	require.NoError(t, err)

	var custom []Header
	for _, h := range resp.Headers {
		if h.Name == "X-A" || h.Name == "X-B" {
			custom = append(custom, h)
		}
	}
	assert.Equal(t, []Header{{"X-A", "first"}, {"X-A", "second"}, {"X-B", "2"}}, custom)

	mt, err := resp.MediaType()
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mt)
	assert.False(t, resp.IsJSON())
}

func TestResponse_MediaType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		wantErr     bool
		isJSON      bool
	}{
		{"", "", false, false},
		{"application/json", "application/json", false, true},
		{"Application/JSON; charset=utf-8", "application/json", false, true},
		{"text/html", "text/html", false, false},
		{"application/json; =broken", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			resp := &Response{}
			if tt.contentType != "" {
				resp.Headers = []Header{{"Content-Type", tt.contentType}}
			}
			mt, err := resp.MediaType()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, mt)
			}
			assert.Equal(t, tt.isJSON, resp.IsJSON())
		})
	}
}

func TestResponse_StatusClasses(t *testing.T) {
	assert.True(t, (&Response{StatusCode: 204}).IsSuccess())
	assert.True(t, (&Response{StatusCode: 301}).IsRedirect())
	assert.True(t, (&Response{StatusCode: 418}).IsClientError())
	assert.True(t, (&Response{StatusCode: 503}).IsServerError())
}

func TestBuildRequestFromIntent(t *testing.T) {
	t.Run("get has no body", func(t *testing.T) {
		req, err := BuildRequestFromIntent(&command.Intent{Verb: command.VerbGet, URL: "http://abc.xyz"})
		require.NoError(t, err)
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "http://abc.xyz", req.URL)
		assert.Nil(t, req.Body)
		assert.Empty(t, req.Headers)
	})

	t.Run("post last key wins", func(t *testing.T) {
		req, err := BuildRequestFromIntent(&command.Intent{
			Verb: command.VerbPost,
			URL:  "http://abc.xyz",
			Body: []command.KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "a", Value: "3"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "application/json", req.Headers["Content-Type"])
		assert.JSONEq(t, `{"a":"3","b":"2"}`, string(req.Body))
	})

	t.Run("post without pairs sends empty object", func(t *testing.T) {
		req, err := BuildRequestFromIntent(&command.Intent{Verb: command.VerbPost, URL: "http://abc.xyz"})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(req.Body))
	})
}

func TestClient_PostIntentRoundTrip(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(data, &body))
		received <- body
	}))
	defer server.Close()

	req, err := BuildRequestFromIntent(&command.Intent{
		Verb: command.VerbPost,
		URL:  server.URL,
		Body: []command.KeyValue{{Key: "greeting", Value: "a=b"}},
	})
	require.NoError(t, err)

	_, err = newTestClient(t).Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "a=b"}, <-received)
}
