package request

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"

	awshttp "github.com/canceraiddev/aws-core-go/transport/http"
)

// A ResponseDecoder converts a fully read HTTP response into the
// operation's result type. Implementations decide for themselves how much
// of the response they inspect; status-sensitive strategies must reject
// bad-status responses rather than decode their bodies.
type ResponseDecoder[T any] interface {
	Decode(resp *awshttp.Response) (T, error)
}

// DecoderFunc adapts a function to the ResponseDecoder interface.
type DecoderFunc[T any] func(resp *awshttp.Response) (T, error)

// Decode implements ResponseDecoder.
func (fn DecoderFunc[T]) Decode(resp *awshttp.Response) (T, error) {
	return fn(resp)
}

// An ErrorDecoder attempts to produce the operation's typed error from a
// bad-status response. Returning false indicates the payload is not a
// structured service error and status-based handling applies instead.
type ErrorDecoder interface {
	DecodeServiceError(resp *awshttp.Response) (error, bool)
}

// ErrorDecoderFunc adapts a function to the ErrorDecoder interface.
type ErrorDecoderFunc func(resp *awshttp.Response) (error, bool)

// DecodeServiceError implements ErrorDecoder.
func (fn ErrorDecoderFunc) DecodeServiceError(resp *awshttp.Response) (error, bool) {
	return fn(resp)
}

// FullDecoder builds a decoder that inspects the complete response,
// status and headers included, regardless of classification.
func FullDecoder[T any](fn func(resp *awshttp.Response) (T, error)) ResponseDecoder[T] {
	return DecoderFunc[T](fn)
}

// JSONBodyDecoder decodes a good-status response body as JSON into T. A
// bad-status response is rejected without parsing its body.
func JSONBodyDecoder[T any]() ResponseDecoder[T] {
	return DecoderFunc[T](func(resp *awshttp.Response) (T, error) {
		var out T
		if !resp.IsGoodStatus() {
			return out, badStatus(resp.StatusCode)
		}
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return out, fmt.Errorf("decode response body: %w", err)
		}
		return out, nil
	})
}

// StringBodyDecoder returns the raw body of a good-status response.
func StringBodyDecoder() ResponseDecoder[string] {
	return DecoderFunc[string](func(resp *awshttp.Response) (string, error) {
		if !resp.IsGoodStatus() {
			return "", badStatus(resp.StatusCode)
		}
		return string(resp.Body), nil
	})
}

// ConstantDecoder ignores the body entirely and yields v for any
// good-status response.
func ConstantDecoder[T any](v T) ResponseDecoder[T] {
	return DecoderFunc[T](func(resp *awshttp.Response) (T, error) {
		if !resp.IsGoodStatus() {
			var zero T
			return zero, badStatus(resp.StatusCode)
		}
		return v, nil
	})
}

// JMESPathDecoder decodes a good-status JSON body and extracts the value
// at expr into T. It serves operations that only need one field of a
// larger response document.
func JMESPathDecoder[T any](expr string) ResponseDecoder[T] {
	return DecoderFunc[T](func(resp *awshttp.Response) (T, error) {
		var out T
		if !resp.IsGoodStatus() {
			return out, badStatus(resp.StatusCode)
		}

		var doc interface{}
		if err := json.Unmarshal(resp.Body, &doc); err != nil {
			return out, fmt.Errorf("decode response body: %w", err)
		}

		found, err := jmespath.Search(expr, doc)
		if err != nil {
			return out, fmt.Errorf("search %q: %w", expr, err)
		}
		if found == nil {
			return out, fmt.Errorf("no value at %q", expr)
		}

		// round-trip through JSON to convert the untyped result into T
		raw, err := json.Marshal(found)
		if err != nil {
			return out, fmt.Errorf("remarshal %q result: %w", expr, err)
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, fmt.Errorf("convert %q result: %w", expr, err)
		}
		return out, nil
	})
}

// JSONErrorDecoder decodes the provider's structured error payload shape
// into E, which must satisfy error. Responses whose bodies are not valid
// JSON are left to status-based handling.
func JSONErrorDecoder[E error]() ErrorDecoder {
	return ErrorDecoderFunc(func(resp *awshttp.Response) (error, bool) {
		var e E
		if len(resp.Body) == 0 {
			return nil, false
		}
		if err := json.Unmarshal(resp.Body, &e); err != nil {
			return nil, false
		}
		return e, true
	})
}

func badStatus(code int) error {
	return fmt.Errorf("bad status code %d", code)
}
