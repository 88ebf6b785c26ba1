// Package httpquery provides percent-encoding of URI query components and
// assembly of canonical query strings as required by request signing.
package httpquery

import (
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes s per the RFC 3986 unreserved character rules.
// Letters, digits, and "-_.~" pass through unchanged; every other byte is
// escaped with uppercase hexadecimal.
func Escape(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~':
		return false
	}
	return true
}

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value string
}

// An Encoder accumulates query parameters and renders them as a query
// string. Keys and values are escaped exactly once, when added; rendering
// only joins the stored pairs.
type Encoder struct {
	pairs []Pair
}

// NewEncoder returns an empty query encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Add appends a key/value parameter, escaping both components. Duplicate
// keys are kept, each instance preserved.
func (e *Encoder) Add(key, value string) {
	e.pairs = append(e.pairs, Pair{Key: Escape(key), Value: Escape(value)})
}

// AddPairs appends each key/value parameter in order.
func (e *Encoder) AddPairs(pairs []Pair) {
	for _, p := range pairs {
		e.Add(p.Key, p.Value)
	}
}

// Len returns the number of parameters added.
func (e *Encoder) Len() int {
	return len(e.pairs)
}

// Encode renders the query string in insertion order. An empty encoder
// renders the empty string with no leading "?".
func (e *Encoder) Encode() string {
	return render(e.pairs)
}

// EncodeSorted renders the canonical query string: pairs sorted by escaped
// key byte order, ties broken by value, as required by SigV4.
func (e *Encoder) EncodeSorted() string {
	sorted := make([]Pair, len(e.pairs))
	copy(sorted, e.pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}
		return sorted[i].Value < sorted[j].Value
	})
	return render(sorted)
}

func render(pairs []Pair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}
