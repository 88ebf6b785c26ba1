// Package service defines the immutable per-API descriptor consumed by the
// request pipeline: protocol family, signing scheme, endpoint topology, and
// the mechanical naming rules derived from them.
package service

import "strings"

// Service is the read-only configuration of one API surface. Construct it
// once with New and share it freely; every accessor is a pure function of
// the descriptor value.
type Service struct {
	endpointPrefix string
	apiVersion     string
	protocol       Protocol
	signer         SigningScheme
	endpoint       Endpoint

	jsonVersion     string
	signingName     string
	targetPrefix    string
	xmlNamespace    string
	timestampFormat TimestampFormat

	hostResolver   HostResolver
	regionResolver RegionResolver
}

// Option configures optional descriptor fields at construction time.
type Option func(*Service)

// WithSigner sets the signing scheme. The default is SignV4.
func WithSigner(s SigningScheme) Option {
	return func(svc *Service) { svc.signer = s }
}

// WithEndpoint sets the endpoint topology. The default is a global
// endpoint.
func WithEndpoint(e Endpoint) Option {
	return func(svc *Service) { svc.endpoint = e }
}

// WithJSONVersion sets the x-amz-json content type sub-version. The
// default is "1.0".
func WithJSONVersion(v string) Option {
	return func(svc *Service) { svc.jsonVersion = v }
}

// WithSigningName overrides the name used in the credential scope when it
// differs from the endpoint prefix.
func WithSigningName(name string) Option {
	return func(svc *Service) { svc.signingName = name }
}

// WithTargetPrefix overrides the X-Amz-Target operation prefix used by
// JSON protocol services.
func WithTargetPrefix(prefix string) Option {
	return func(svc *Service) { svc.targetPrefix = prefix }
}

// WithXMLNamespace sets the XML namespace REST-XML services serialize
// payloads under.
func WithXMLNamespace(ns string) Option {
	return func(svc *Service) { svc.xmlNamespace = ns }
}

// WithTimestampFormat overrides the payload timestamp format.
func WithTimestampFormat(f TimestampFormat) Option {
	return func(svc *Service) { svc.timestampFormat = f }
}

// WithHostResolver replaces the standard host naming scheme.
func WithHostResolver(r HostResolver) Option {
	return func(svc *Service) { svc.hostResolver = r }
}

// WithRegionResolver replaces the standard signing region rule.
func WithRegionResolver(r RegionResolver) Option {
	return func(svc *Service) { svc.regionResolver = r }
}

// New builds a descriptor for the API identified by its endpoint prefix
// and version, speaking the given protocol. Unset optional fields take the
// provider's documented defaults.
func New(endpointPrefix, apiVersion string, protocol Protocol, opts ...Option) Service {
	svc := Service{
		endpointPrefix:  endpointPrefix,
		apiVersion:      apiVersion,
		protocol:        protocol,
		signer:          SignV4,
		endpoint:        GlobalEndpoint(),
		jsonVersion:     "1.0",
		timestampFormat: defaultTimestampFormat(protocol),
		hostResolver:    StandardHostResolver{},
		regionResolver:  StandardRegionResolver{},
	}
	for _, opt := range opts {
		opt(&svc)
	}
	return svc
}

// EndpointPrefix returns the service's endpoint prefix.
func (s Service) EndpointPrefix() string {
	return s.endpointPrefix
}

// APIVersion returns the service's API version date string.
func (s Service) APIVersion() string {
	return s.apiVersion
}

// Protocol returns the service's wire protocol family.
func (s Service) Protocol() Protocol {
	return s.protocol
}

// Signer returns the signing scheme requests to this service require.
func (s Service) Signer() SigningScheme {
	return s.signer
}

// Endpoint returns the service's endpoint topology.
func (s Service) Endpoint() Endpoint {
	return s.endpoint
}

// Host resolves the host requests are sent to.
func (s Service) Host() string {
	return s.hostResolver.ResolveHost(s.endpoint, s.endpointPrefix)
}

// Region resolves the region used in the signing scope.
func (s Service) Region() string {
	return s.regionResolver.ResolveRegion(s.endpoint)
}

// SigningName returns the service name bound into the credential scope.
// It defaults to the endpoint prefix.
func (s Service) SigningName() string {
	if s.signingName != "" {
		return s.signingName
	}
	return s.endpointPrefix
}

// TargetPrefix returns the X-Amz-Target operation prefix for JSON protocol
// services. When the service definition carries no explicit prefix the
// provider's convention applies: "AWS", the uppercased endpoint prefix,
// "_", and the API version with its dashes removed.
func (s Service) TargetPrefix() string {
	if s.targetPrefix != "" {
		return s.targetPrefix
	}
	return "AWS" + strings.ToUpper(s.endpointPrefix) + "_" +
		strings.ReplaceAll(s.apiVersion, "-", "")
}

// XMLNamespace returns the payload XML namespace, if any.
func (s Service) XMLNamespace() string {
	return s.xmlNamespace
}

// TimestampFormat returns the payload timestamp format.
func (s Service) TimestampFormat() TimestampFormat {
	return s.timestampFormat
}

// JSONContentType returns the x-amz-json content type including the
// service's JSON sub-version.
func (s Service) JSONContentType() string {
	return "application/x-amz-json-" + s.jsonVersion
}

// ContentType returns the request content type implied by the protocol
// family. Bodies constructed with an explicit mime type override it.
func (s Service) ContentType() string {
	switch s.protocol {
	case ProtocolQuery, ProtocolEC2:
		return "application/x-www-form-urlencoded"
	case ProtocolRestXML:
		return "application/xml"
	default:
		return s.JSONContentType()
	}
}

// AcceptType returns the Accept header value implied by the protocol
// family.
func (s Service) AcceptType() string {
	if s.protocol == ProtocolRestXML {
		return "application/xml"
	}
	return "application/json"
}
