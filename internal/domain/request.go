package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Request describes one logical API call. Retries reuse the same value, so the
// With* helpers return modified copies instead of mutating the receiver.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func NewRequest(method, path string) Request {
	return Request{
		Method: strings.ToUpper(strings.TrimSpace(method)),
		Path:   strings.TrimSpace(path),
		Header: http.Header{},
	}
}

func (r Request) Clone() Request {
	clone := r
	clone.Header = r.Header.Clone()
	if clone.Header == nil {
		clone.Header = http.Header{}
	}
	if r.Body != nil {
		clone.Body = append([]byte(nil), r.Body...)
	}

	return clone
}

func (r Request) WithHeader(key, value string) Request {
	clone := r.Clone()
	clone.Header.Set(key, value)
	return clone
}

func (r Request) WithBody(body []byte) Request {
	clone := r.Clone()
	clone.Body = append([]byte(nil), body...)
	return clone
}

func (r Request) WithJSONBody(v any) (Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Request{}, fmt.Errorf("encode request body: %w", err)
	}

	return r.WithBody(body), nil
}

func (r Request) String() string {
	return r.Method + " " + r.Path
}
