// Package request defines the unsigned request model handed to the
// dispatcher: method, path, payload, ordered header and query parameters,
// and the decoders bound to the operation's success and failure types.
package request

import (
	"strings"

	"github.com/canceraiddev/aws-core-go/encoding/httpquery"
)

// Header is one header name/value pair. Requests keep headers as an
// ordered list; duplicates are permitted and preserved.
type Header struct {
	Name  string
	Value string
}

// Request is one unsigned API request bound to its expected result type T.
// Build it with New, extend it with AddHeader and AddQuery, then hand it to
// the dispatcher. Headers and query parameters are append-only; nothing is
// removed or reordered after it is added, and the request must not be
// extended once dispatch begins.
type Request[T any] struct {
	OperationName string
	Method        string

	// Path is the request path, already percent-safe.
	Path string

	Body    Body
	Decoder ResponseDecoder[T]

	// ErrorDecoder, when set, is offered bad-status responses to produce
	// the operation's typed error.
	ErrorDecoder ErrorDecoder

	headers []Header
	query   []httpquery.Pair
}

// New builds a request for the named operation with its success decoder
// bound.
func New[T any](operationName, method, path string, body Body, decoder ResponseDecoder[T]) *Request[T] {
	return &Request[T]{
		OperationName: operationName,
		Method:        method,
		Path:          path,
		Body:          body,
		Decoder:       decoder,
	}
}

// WithErrorDecoder binds the operation's error decoder and returns the
// request for chaining.
func (r *Request[T]) WithErrorDecoder(d ErrorDecoder) *Request[T] {
	r.ErrorDecoder = d
	return r
}

// AddHeader appends a header pair. Existing entries are never replaced.
func (r *Request[T]) AddHeader(name, value string) *Request[T] {
	r.headers = append(r.headers, Header{Name: name, Value: value})
	return r
}

// AddQuery appends a query parameter. Values are raw; percent-encoding is
// applied once, at canonicalization time.
func (r *Request[T]) AddQuery(key, value string) *Request[T] {
	r.query = append(r.query, httpquery.Pair{Key: key, Value: value})
	return r
}

// Headers returns a copy of the header list in insertion order.
func (r *Request[T]) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// Query returns a copy of the query parameter list in insertion order.
func (r *Request[T]) Query() []httpquery.Pair {
	out := make([]httpquery.Pair, len(r.query))
	copy(out, r.query)
	return out
}

// HasHeader reports whether a header with the given name has been added,
// matching case-insensitively.
func (r *Request[T]) HasHeader(name string) bool {
	for _, h := range r.headers {
		if strings.EqualFold(h.Name, name) {
			return true
		}
	}
	return false
}
