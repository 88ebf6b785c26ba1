package service

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML shape of one entry in a service table. Service
// tables are pure data; loading one produces an immutable descriptor.
//
//	endpointPrefix: dynamodb
//	apiVersion: "2012-08-10"
//	protocol: json
//	signer: v4
//	jsonVersion: "1.0"
//	targetPrefix: DynamoDB_20120810
//	endpoint:
//	  region: us-east-1
type Definition struct {
	EndpointPrefix string `yaml:"endpointPrefix"`
	APIVersion     string `yaml:"apiVersion"`
	Protocol       string `yaml:"protocol"`
	Signer         string `yaml:"signer"`
	JSONVersion    string `yaml:"jsonVersion"`
	SigningName    string `yaml:"signingName"`
	TargetPrefix   string `yaml:"targetPrefix"`
	XMLNamespace   string `yaml:"xmlNamespace"`
	Endpoint       struct {
		Region string `yaml:"region"`
		Host   string `yaml:"host"`
	} `yaml:"endpoint"`
}

// Load reads a YAML service definition and builds its descriptor.
func Load(r io.Reader) (Service, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Service{}, fmt.Errorf("decode service definition: %w", err)
	}
	return def.Build()
}

// LoadFile reads a YAML service definition from a file.
func LoadFile(path string) (Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return Service{}, fmt.Errorf("open service definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build validates the definition and constructs its descriptor.
func (d Definition) Build() (Service, error) {
	if !ValidHostLabel(d.EndpointPrefix) {
		return Service{}, fmt.Errorf("invalid endpoint prefix %q", d.EndpointPrefix)
	}
	if d.APIVersion == "" {
		return Service{}, fmt.Errorf("apiVersion is required")
	}

	protocol, err := ParseProtocol(d.Protocol)
	if err != nil {
		return Service{}, err
	}

	var opts []Option

	if d.Signer != "" {
		scheme, err := ParseSigningScheme(d.Signer)
		if err != nil {
			return Service{}, err
		}
		opts = append(opts, WithSigner(scheme))
	}
	if d.Endpoint.Region != "" {
		if !ValidHostLabel(d.Endpoint.Region) {
			return Service{}, fmt.Errorf("invalid region %q", d.Endpoint.Region)
		}
		opts = append(opts, WithEndpoint(RegionalEndpoint(d.Endpoint.Region)))
	}
	if d.Endpoint.Host != "" {
		opts = append(opts, WithHostResolver(FixedHostResolver{Host: d.Endpoint.Host}))
	}
	if d.JSONVersion != "" {
		opts = append(opts, WithJSONVersion(d.JSONVersion))
	}
	if d.SigningName != "" {
		opts = append(opts, WithSigningName(d.SigningName))
	}
	if d.TargetPrefix != "" {
		opts = append(opts, WithTargetPrefix(d.TargetPrefix))
	}
	if d.XMLNamespace != "" {
		opts = append(opts, WithXMLNamespace(d.XMLNamespace))
	}

	return New(d.EndpointPrefix, d.APIVersion, protocol, opts...), nil
}
