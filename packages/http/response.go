package http

import (
	"mime"
	"net/http"
	"sort"
	"strings"
	"time"
)

type Header struct {
	Name  string
	Value string
}

type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Headers    []Header
	Body       []byte
	Duration   time.Duration
}

// orderedHeaders flattens h into one entry per value. net/http does not
// keep wire order, so names are sorted and values keep their received order.
func orderedHeaders(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)

	var headers []Header
	for _, name := range names {
		for _, v := range h[name] {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}
	return headers
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, key) {
			return h.Value
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// MediaType returns the Content-Type without parameters, lower-cased. It
// returns "" when the header is absent.
func (r *Response) MediaType() (string, error) {
	ct := r.ContentType()
	if ct == "" {
		return "", nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", err
	}
	return mediaType, nil
}

func (r *Response) IsJSON() bool {
	mt, err := r.MediaType()
	return err == nil && mt == "application/json"
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
