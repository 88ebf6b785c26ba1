package service_test

import (
	"testing"

	"github.com/canceraiddev/aws-core-go/service"
)

func TestHostResolution(t *testing.T) {
	cases := map[string]struct {
		svc    service.Service
		expect string
	}{
		"global": {
			svc:    service.New("iam", "2010-05-08", service.ProtocolQuery),
			expect: "iam.amazonaws.com",
		},
		"regional": {
			svc: service.New("dynamodb", "2012-08-10", service.ProtocolJSON,
				service.WithEndpoint(service.RegionalEndpoint("eu-west-2"))),
			expect: "dynamodb.eu-west-2.amazonaws.com",
		},
		"fixed host": {
			svc: service.New("s3", "2006-03-01", service.ProtocolRestXML,
				service.WithEndpoint(service.RegionalEndpoint("us-east-1")),
				service.WithHostResolver(service.FixedHostResolver{Host: "localhost:4566"})),
			expect: "localhost:4566",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.svc.Host(); got != c.expect {
				t.Errorf("expect host %q, got %q", c.expect, got)
			}
		})
	}
}

func TestRegionResolution(t *testing.T) {
	global := service.New("iam", "2010-05-08", service.ProtocolQuery)
	if got := global.Region(); got != "us-east-1" {
		t.Errorf("expect global scope region us-east-1, got %q", got)
	}

	regional := service.New("sqs", "2012-11-05", service.ProtocolQuery,
		service.WithEndpoint(service.RegionalEndpoint("ap-southeast-2")))
	if got := regional.Region(); got != "ap-southeast-2" {
		t.Errorf("expect ap-southeast-2, got %q", got)
	}
}

func TestTargetPrefixDefault(t *testing.T) {
	svc := service.New("dynamodb", "2012-08-10", service.ProtocolJSON)
	if got := svc.TargetPrefix(); got != "AWSDYNAMODB_20120810" {
		t.Errorf("unexpected default target prefix %q", got)
	}

	named := service.New("dynamodb", "2012-08-10", service.ProtocolJSON,
		service.WithTargetPrefix("DynamoDB_20120810"))
	if got := named.TargetPrefix(); got != "DynamoDB_20120810" {
		t.Errorf("unexpected target prefix %q", got)
	}
}

func TestSigningNameDefaultsToPrefix(t *testing.T) {
	svc := service.New("monitoring", "2010-08-01", service.ProtocolQuery)
	if got := svc.SigningName(); got != "monitoring" {
		t.Errorf("expect monitoring, got %q", got)
	}

	svc = service.New("monitoring", "2010-08-01", service.ProtocolQuery,
		service.WithSigningName("cloudwatch"))
	if got := svc.SigningName(); got != "cloudwatch" {
		t.Errorf("expect cloudwatch, got %q", got)
	}
}

func TestContentTypes(t *testing.T) {
	jsonSvc := service.New("dynamodb", "2012-08-10", service.ProtocolJSON,
		service.WithJSONVersion("1.1"))
	if got := jsonSvc.ContentType(); got != "application/x-amz-json-1.1" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := jsonSvc.AcceptType(); got != "application/json" {
		t.Errorf("unexpected accept type %q", got)
	}

	xmlSvc := service.New("s3", "2006-03-01", service.ProtocolRestXML)
	if got := xmlSvc.ContentType(); got != "application/xml" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := xmlSvc.AcceptType(); got != "application/xml" {
		t.Errorf("unexpected accept type %q", got)
	}

	querySvc := service.New("sts", "2011-06-15", service.ProtocolQuery)
	if got := querySvc.ContentType(); got != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type %q", got)
	}
}

func TestValidHostLabel(t *testing.T) {
	valid := []string{"s3", "us-east-1", "a", "abc123"}
	for _, label := range valid {
		if !service.ValidHostLabel(label) {
			t.Errorf("expect %q to be valid", label)
		}
	}

	invalid := []string{"", "-lead", "has space", "has.dot", "x12345678901234567890123456789012345678901234567890123456789012345"}
	for _, label := range invalid {
		if service.ValidHostLabel(label) {
			t.Errorf("expect %q to be invalid", label)
		}
	}
}
