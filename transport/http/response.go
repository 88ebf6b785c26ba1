package http

import (
	"fmt"
	"io"
	"net/http"
)

// Response is one fully read HTTP response: status, headers, and body
// bytes. Decoders consume Response values; by the time one is handed to a
// decoder the network round trip has already completed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ReadResponse drains and closes the body of a standard library response,
// returning its Response value.
func ReadResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// IsGoodStatus reports whether the response status code is in the
// success range [200, 300).
func (r *Response) IsGoodStatus() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
