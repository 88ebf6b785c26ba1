package service

import "fmt"

// Protocol identifies the wire shape an API uses for its requests and
// responses. The set is closed; AWS APIs declare exactly one.
type Protocol int

const (
	// ProtocolJSON is the JSON-RPC style protocol (X-Amz-Target header,
	// x-amz-json content type).
	ProtocolJSON Protocol = iota
	// ProtocolQuery is the form-encoded query protocol.
	ProtocolQuery
	// ProtocolEC2 is the EC2 variant of the query protocol.
	ProtocolEC2
	// ProtocolRestJSON is REST with JSON payloads.
	ProtocolRestJSON
	// ProtocolRestXML is REST with XML payloads.
	ProtocolRestXML
)

// String returns the protocol name as it appears in service definitions.
func (p Protocol) String() string {
	switch p {
	case ProtocolJSON:
		return "json"
	case ProtocolQuery:
		return "query"
	case ProtocolEC2:
		return "ec2"
	case ProtocolRestJSON:
		return "rest-json"
	case ProtocolRestXML:
		return "rest-xml"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// ParseProtocol maps a service-definition protocol name to its Protocol
// value.
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "json":
		return ProtocolJSON, nil
	case "query":
		return ProtocolQuery, nil
	case "ec2":
		return ProtocolEC2, nil
	case "rest-json":
		return ProtocolRestJSON, nil
	case "rest-xml":
		return ProtocolRestXML, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q", s)
	}
}

// SigningScheme identifies the request signing scheme a service requires.
type SigningScheme int

const (
	// SignV4 is AWS Signature Version 4.
	SignV4 SigningScheme = iota
	// SignS3 is the S3 alternate signing scheme. It is recognized in
	// service definitions but no signer is implemented for it; dispatching
	// a SignS3 request fails with a SigningUnsupportedError.
	SignS3
)

// String returns the scheme name as it appears in service definitions.
func (s SigningScheme) String() string {
	switch s {
	case SignV4:
		return "v4"
	case SignS3:
		return "s3"
	default:
		return fmt.Sprintf("SigningScheme(%d)", int(s))
	}
}

// ParseSigningScheme maps a service-definition signer name to its
// SigningScheme value.
func ParseSigningScheme(s string) (SigningScheme, error) {
	switch s {
	case "v4":
		return SignV4, nil
	case "s3":
		return SignS3, nil
	default:
		return 0, fmt.Errorf("unknown signing scheme %q", s)
	}
}

// TimestampFormat identifies how timestamps are serialized in request and
// response payloads for a service. It is carried as descriptor data for
// payload serializers; the signing core itself always uses the ISO 8601
// basic form.
type TimestampFormat int

const (
	// TimestampISO8601 is the ISO 8601 date-time form.
	TimestampISO8601 TimestampFormat = iota
	// TimestampUnix is fractional seconds since the epoch.
	TimestampUnix
	// TimestampRFC822 is the RFC 822/1123 HTTP date form.
	TimestampRFC822
)

// defaultTimestampFormat returns the payload timestamp format AWS assigns
// to a protocol family when the service definition does not override it.
func defaultTimestampFormat(p Protocol) TimestampFormat {
	switch p {
	case ProtocolJSON, ProtocolRestJSON:
		return TimestampUnix
	default:
		return TimestampISO8601
	}
}
