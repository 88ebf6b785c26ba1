package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canceraiddev/aws-core-go/service"
)

func TestLoadDefinition(t *testing.T) {
	doc := `
endpointPrefix: dynamodb
apiVersion: "2012-08-10"
protocol: json
signer: v4
jsonVersion: "1.0"
targetPrefix: DynamoDB_20120810
endpoint:
  region: us-west-2
`
	svc, err := service.Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, "dynamodb", svc.EndpointPrefix())
	require.Equal(t, service.ProtocolJSON, svc.Protocol())
	require.Equal(t, service.SignV4, svc.Signer())
	require.Equal(t, "dynamodb.us-west-2.amazonaws.com", svc.Host())
	require.Equal(t, "us-west-2", svc.Region())
	require.Equal(t, "DynamoDB_20120810", svc.TargetPrefix())
}

func TestLoadGlobalEndpoint(t *testing.T) {
	doc := `
endpointPrefix: iam
apiVersion: "2010-05-08"
protocol: query
`
	svc, err := service.Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.False(t, svc.Endpoint().IsRegional())
	require.Equal(t, "iam.amazonaws.com", svc.Host())
	require.Equal(t, "us-east-1", svc.Region())
}

func TestLoadFixedHost(t *testing.T) {
	doc := `
endpointPrefix: s3
apiVersion: "2006-03-01"
protocol: rest-xml
signer: s3
endpoint:
  region: us-east-1
  host: localhost:9000
`
	svc, err := service.Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, service.SignS3, svc.Signer())
	require.Equal(t, "localhost:9000", svc.Host())
	require.Equal(t, "us-east-1", svc.Region())
}

func TestLoadRejectsBadDefinitions(t *testing.T) {
	cases := map[string]string{
		"unknown protocol": `
endpointPrefix: foo
apiVersion: "2020-01-01"
protocol: soap
`,
		"unknown signer": `
endpointPrefix: foo
apiVersion: "2020-01-01"
protocol: json
signer: v5
`,
		"bad endpoint prefix": `
endpointPrefix: "has space"
apiVersion: "2020-01-01"
protocol: json
`,
		"bad region": `
endpointPrefix: foo
apiVersion: "2020-01-01"
protocol: json
endpoint:
  region: "not a region"
`,
		"missing api version": `
endpointPrefix: foo
protocol: json
`,
		"unknown field": `
endpointPrefix: foo
apiVersion: "2020-01-01"
protocol: json
unexpected: value
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}
