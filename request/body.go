package request

import (
	"encoding/json"
	"fmt"

	"github.com/canceraiddev/aws-core-go/service"
)

type bodyKind int

const (
	bodyEmpty bodyKind = iota
	bodyJSON
	bodyString
)

// Body is a request payload: empty, a JSON document, or a raw string with
// an explicit mime type. Exactly one variant holds; serialization to bytes
// is total for the chosen variant.
type Body struct {
	kind bodyKind
	data []byte
	mime string
}

// EmptyBody returns the payload for bodiless requests.
func EmptyBody() Body {
	return Body{}
}

// JSONBody serializes v as a compact JSON document. The content type is
// resolved from the service descriptor at dispatch time.
func JSONBody(v interface{}) (Body, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Body{}, fmt.Errorf("marshal request body: %w", err)
	}
	return Body{kind: bodyJSON, data: data}, nil
}

// StringBody returns a payload carrying content verbatim with the given
// mime type.
func StringBody(mime, content string) Body {
	return Body{kind: bodyString, data: []byte(content), mime: mime}
}

// IsEmpty reports whether the body is the empty variant.
func (b Body) IsEmpty() bool {
	return b.kind == bodyEmpty
}

// Bytes returns the serialized payload. Empty bodies yield a nil slice.
func (b Body) Bytes() []byte {
	return b.data
}

// String returns the serialized payload as a string.
func (b Body) String() string {
	return string(b.data)
}

// ContentType resolves the Content-Type header value for the payload.
// Explicit-mime bodies use the caller-supplied type verbatim; JSON bodies
// use the service's content type; empty bodies carry none.
func (b Body) ContentType(svc service.Service) string {
	switch b.kind {
	case bodyJSON:
		return svc.ContentType()
	case bodyString:
		return b.mime
	default:
		return ""
	}
}
