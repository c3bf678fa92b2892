package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abdul-hamid-achik/hitpie/packages/core/command"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// BuildRequestFromIntent turns a parsed intent into a request. POST pairs
// become a JSON object body; a repeated key keeps its last value.
func BuildRequestFromIntent(intent *command.Intent) (*Request, error) {
	switch intent.Verb {
	case command.VerbGet:
		return NewRequest(http.MethodGet, intent.URL), nil
	case command.VerbPost:
		body, err := json.Marshal(intent.BodyMap())
		if err != nil {
			return nil, fmt.Errorf("encoding JSON body: %w", err)
		}
		r := NewRequest(http.MethodPost, intent.URL)
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(body)
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported verb %v", intent.Verb)
	}
}
