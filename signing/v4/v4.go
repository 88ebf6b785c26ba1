// Package v4 implements AWS Signature Version 4 request signing: the
// canonical request representation, the HMAC signing key chain, and the
// Authorization header assembly. Signing is a pure computation over the
// inputs; the package holds no state and every call recomputes from the
// caller-supplied timestamp.
package v4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	// SigningAlgorithm is the SigV4 algorithm identifier.
	SigningAlgorithm = "AWS4-HMAC-SHA256"

	// EmptyStringSHA256 is the hex encoded SHA-256 hash of an empty
	// string, the payload hash of bodiless requests.
	EmptyStringSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	// TimeFormat is the ISO 8601 basic form used in the X-Amz-Date header
	// and the string to sign.
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the 8-digit date used in the credential scope and
	// key derivation.
	ShortTimeFormat = "20060102"

	// scopeTerminator closes every credential scope.
	scopeTerminator = "aws4_request"
)

// HMACSHA256 computes the HMAC-SHA256 of data under key.
func HMACSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// PayloadHash returns the lower-case hex SHA-256 of a request payload.
func PayloadHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// DeriveSigningKey derives the scoped signing key through the SigV4 HMAC
// chain:
//
//	kDate    = HMAC("AWS4"+secret, date)
//	kRegion  = HMAC(kDate, region)
//	kService = HMAC(kRegion, service)
//	kSigning = HMAC(kService, "aws4_request")
//
// The derivation is deterministic; identical inputs always produce an
// identical key.
func DeriveSigningKey(secretAccessKey, date, region, service string) []byte {
	kDate := HMACSHA256([]byte("AWS4"+secretAccessKey), []byte(date))
	kRegion := HMACSHA256(kDate, []byte(region))
	kService := HMACSHA256(kRegion, []byte(service))
	return HMACSHA256(kService, []byte(scopeTerminator))
}

// CredentialScope joins the date, region, service, and terminator into the
// scope that binds a derived key to its validity window.
func CredentialScope(date, region, service string) string {
	return strings.Join([]string{date, region, service, scopeTerminator}, "/")
}

// CanonicalRequest joins the six canonical fields. The canonical headers
// block already carries its trailing newline, so no separator is inserted
// between it and the signed-headers list beyond the joining "\n".
func CanonicalRequest(method, path, canonicalQuery, canonicalHeaders, signedHeaders, payloadHash string) string {
	return strings.Join([]string{
		method,
		path,
		canonicalQuery,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")
}

// StringToSign joins the algorithm, timestamp, scope, and hex SHA-256 of
// the canonical request.
func StringToSign(timestamp, scope, canonicalRequest string) string {
	return strings.Join([]string{
		SigningAlgorithm,
		timestamp,
		scope,
		PayloadHash([]byte(canonicalRequest)),
	}, "\n")
}

// Signature computes the final request signature as lower-case hex.
func Signature(signingKey []byte, stringToSign string) string {
	return hex.EncodeToString(HMACSHA256(signingKey, []byte(stringToSign)))
}

// AuthorizationHeader assembles the Authorization header value.
func AuthorizationHeader(accessKeyID, scope, signedHeaders, signature string) string {
	var sb strings.Builder
	sb.WriteString(SigningAlgorithm)
	sb.WriteString(" Credential=")
	sb.WriteString(accessKeyID)
	sb.WriteByte('/')
	sb.WriteString(scope)
	sb.WriteString(", SignedHeaders=")
	sb.WriteString(signedHeaders)
	sb.WriteString(", Signature=")
	sb.WriteString(signature)
	return sb.String()
}
