package v4

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/canceraiddev/aws-core-go/credentials"
)

// Signer signs one request. It is a value configured per call; concurrent
// signings with the same configuration are independent.
type Signer struct {
	Credentials credentials.Credentials
	Region      string
	ServiceName string

	// Time is the caller-supplied signing timestamp. Signatures are bound
	// to it; stale digests are never reused.
	Time time.Time
}

// SignRequest is the canonical input to one signing computation. Headers
// must already carry every header to be signed, including Host, X-Amz-Date,
// and X-Amz-Content-Sha256.
type SignRequest struct {
	Method string

	// Path is the request path, already percent-safe.
	Path string

	// CanonicalQuery is the sorted, escaped query string.
	CanonicalQuery string

	Headers     http.Header
	PayloadHash string
}

// SignResult carries the Authorization header together with the
// intermediate strings, which are stable inputs for verification and
// debug logging.
type SignResult struct {
	Authorization    string
	SignedHeaders    string
	CanonicalRequest string
	StringToSign     string
	Signature        string
	Scope            string
}

// Sign computes the SigV4 signature for req. It never fails: signing is a
// pure function of the signer and request values.
func (s Signer) Sign(req SignRequest) SignResult {
	t := s.Time.UTC()
	timestamp := t.Format(TimeFormat)
	date := t.Format(ShortTimeFormat)

	canonicalHeaders, signedHeaders := CanonicalHeaders(req.Headers)
	scope := CredentialScope(date, s.Region, s.ServiceName)

	canonicalRequest := CanonicalRequest(
		req.Method,
		req.Path,
		req.CanonicalQuery,
		canonicalHeaders,
		signedHeaders,
		req.PayloadHash,
	)
	stringToSign := StringToSign(timestamp, scope, canonicalRequest)

	key := DeriveSigningKey(s.Credentials.SecretAccessKey, date, s.Region, s.ServiceName)
	signature := Signature(key, stringToSign)

	return SignResult{
		Authorization:    AuthorizationHeader(s.Credentials.AccessKeyID, scope, signedHeaders, signature),
		SignedHeaders:    signedHeaders,
		CanonicalRequest: canonicalRequest,
		StringToSign:     stringToSign,
		Signature:        signature,
		Scope:            scope,
	}
}

// CanonicalHeaders renders the canonical headers block and the
// signed-headers list for a header set. Names are lower-cased and sorted,
// values trimmed of surrounding whitespace, duplicate values joined with
// commas. The block ends with a trailing newline; the list joins names
// with ";".
func CanonicalHeaders(headers http.Header) (canonical, signed string) {
	names := make([]string, 0, len(headers))
	values := make(map[string][]string, len(headers))

	for name, vs := range headers {
		lower := strings.ToLower(name)
		if _, ok := values[lower]; !ok {
			names = append(names, lower)
		}
		values[lower] = append(values[lower], vs...)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte(':')
		for i, v := range values[name] {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strings.TrimSpace(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), strings.Join(names, ";")
}
