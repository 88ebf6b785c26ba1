package awscore

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/canceraiddev/aws-core-go/credentials"
	"github.com/canceraiddev/aws-core-go/encoding/httpquery"
	"github.com/canceraiddev/aws-core-go/request"
	"github.com/canceraiddev/aws-core-go/service"
	v4 "github.com/canceraiddev/aws-core-go/signing/v4"
	awshttp "github.com/canceraiddev/aws-core-go/transport/http"
)

// Send signs req with creds and dispatches it to svc, decoding the
// response into T. The signed request is fully constructed before the
// network call is issued; cancelling ctx only interrupts the transport
// step.
func Send[T any](ctx context.Context, c *Client, svc service.Service, creds credentials.Credentials, req *request.Request[T]) (T, error) {
	return send(ctx, c, svc, &creds, req)
}

// SendUnsigned dispatches req to svc without an Authorization header. The
// date and payload hash headers are still stamped, since some unsigned
// APIs verify checksums.
func SendUnsigned[T any](ctx context.Context, c *Client, svc service.Service, req *request.Request[T]) (T, error) {
	return send(ctx, c, svc, nil, req)
}

func send[T any](ctx context.Context, c *Client, svc service.Service, creds *credentials.Credentials, req *request.Request[T]) (T, error) {
	var zero T

	if creds != nil && svc.Signer() != service.SignV4 {
		return zero, &SigningUnsupportedError{Scheme: svc.Signer()}
	}

	now := c.clock().UTC()
	body := req.Body.Bytes()
	payloadHash := v4.PayloadHash(body)
	host := svc.Host()

	headers := http.Header{}
	for _, h := range req.Headers() {
		headers.Add(h.Name, h.Value)
	}
	if svc.Protocol() == service.ProtocolJSON {
		headers.Set("X-Amz-Target", svc.TargetPrefix()+"."+req.OperationName)
	}
	if ct := req.Body.ContentType(svc); ct != "" && headers.Get("Content-Type") == "" {
		headers.Set("Content-Type", ct)
	}
	if headers.Get("Accept") == "" {
		headers.Set("Accept", svc.AcceptType())
	}
	headers.Set("Amz-Sdk-Invocation-Id", uuid.NewString())
	headers.Set("Host", host)
	headers.Set("X-Amz-Date", now.Format(v4.TimeFormat))
	headers.Set("X-Amz-Content-Sha256", payloadHash)

	encoder := httpquery.NewEncoder()
	encoder.AddPairs(req.Query())
	canonicalQuery := encoder.EncodeSorted()

	if creds != nil {
		signer := v4.Signer{
			Credentials: *creds,
			Region:      svc.Region(),
			ServiceName: svc.SigningName(),
			Time:        now,
		}
		res := signer.Sign(v4.SignRequest{
			Method:         req.Method,
			Path:           req.Path,
			CanonicalQuery: canonicalQuery,
			Headers:        headers,
			PayloadHash:    payloadHash,
		})
		headers.Set("Authorization", res.Authorization)

		// the session token rides along unsigned, appended after all
		// other headers
		if creds.HasSessionToken() {
			headers.Set("X-Amz-Security-Token", creds.SessionToken)
		}

		c.logger.Debug().
			Str("operation", req.OperationName).
			Str("scope", res.Scope).
			Str("signed_headers", res.SignedHeaders).
			Msg("signed request")
	}

	url := "https://" + host + req.Path
	if canonicalQuery != "" {
		url += "?" + canonicalQuery
	}

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return zero, &TransportError{Err: err}
	}
	httpReq.Header = headers
	httpReq.Host = host

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return zero, &TransportError{Err: err}
	}

	response, err := awshttp.ReadResponse(resp)
	if err != nil {
		return zero, &TransportError{Err: err}
	}

	c.logger.Debug().
		Str("operation", req.OperationName).
		Int("status", response.StatusCode).
		Int("body_bytes", len(response.Body)).
		Msg("response received")

	if !response.IsGoodStatus() && req.ErrorDecoder != nil {
		if svcErr, ok := req.ErrorDecoder.DecodeServiceError(response); ok {
			return zero, &ServiceError{StatusCode: response.StatusCode, Err: svcErr}
		}
	}

	out, err := req.Decoder.Decode(response)
	if err != nil {
		return zero, &DecodeError{StatusCode: response.StatusCode, Message: err.Error()}
	}
	return out, nil
}
