package service

import "strings"

// Endpoint describes where a service is addressed: globally, or within a
// named region.
type Endpoint struct {
	regional bool
	region   string
}

// GlobalEndpoint returns the endpoint for services with a single global
// address, such as IAM.
func GlobalEndpoint() Endpoint {
	return Endpoint{}
}

// RegionalEndpoint returns the endpoint for services addressed within the
// given region.
func RegionalEndpoint(region string) Endpoint {
	return Endpoint{regional: true, region: region}
}

// IsRegional reports whether the endpoint is bound to a region.
func (e Endpoint) IsRegional() bool {
	return e.regional
}

// A HostResolver maps an endpoint and service prefix to the host a request
// is sent to. Resolution is total; it never fails.
type HostResolver interface {
	ResolveHost(e Endpoint, prefix string) string
}

// A RegionResolver maps an endpoint to the region used in the signing
// scope. Resolution is total; it never fails.
type RegionResolver interface {
	ResolveRegion(e Endpoint) string
}

// defaultDomain is the provider's public endpoint domain.
const defaultDomain = "amazonaws.com"

// defaultScopeRegion is the region global services sign against.
const defaultScopeRegion = "us-east-1"

// StandardHostResolver resolves hosts using the provider's standard naming
// scheme: "<prefix>.<region>.<domain>" for regional endpoints and
// "<prefix>.<domain>" for global ones.
type StandardHostResolver struct {
	// Domain overrides the endpoint domain. Empty means amazonaws.com.
	Domain string
}

// ResolveHost implements HostResolver.
func (r StandardHostResolver) ResolveHost(e Endpoint, prefix string) string {
	domain := r.Domain
	if domain == "" {
		domain = defaultDomain
	}
	if e.IsRegional() {
		return strings.Join([]string{prefix, e.region, domain}, ".")
	}
	return prefix + "." + domain
}

// FixedHostResolver resolves every endpoint to a fixed host. It serves
// services with bespoke host naming and local test endpoints.
type FixedHostResolver struct {
	Host string
}

// ResolveHost implements HostResolver.
func (r FixedHostResolver) ResolveHost(Endpoint, string) string {
	return r.Host
}

// StandardRegionResolver resolves regional endpoints to their own region
// and global endpoints to the provider's scope region for global services.
type StandardRegionResolver struct {
	// Default overrides the region used for global endpoints. Empty means
	// us-east-1.
	Default string
}

// ResolveRegion implements RegionResolver.
func (r StandardRegionResolver) ResolveRegion(e Endpoint) string {
	if e.IsRegional() {
		return e.region
	}
	if r.Default != "" {
		return r.Default
	}
	return defaultScopeRegion
}

// ValidHostLabel returns whether the label is a valid RFC 3986 host label.
// Service prefixes and regions are used as host labels, so descriptor
// loaders reject values that would produce an unroutable host.
func ValidHostLabel(label string) bool {
	if l := len(label); l < 1 || l > 63 {
		return false
	}
	if c := label[0]; !isAlnum(rune(c)) {
		return false
	}
	for _, r := range label[1:] {
		if !isAlnum(r) && r != '-' {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
