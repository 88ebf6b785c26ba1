// Command sigv4sign signs a request described on the command line and
// prints the resulting header set, without sending anything. It exists to
// debug signature mismatches against a known service configuration.
package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/canceraiddev/aws-core-go/credentials"
	"github.com/canceraiddev/aws-core-go/encoding/httpquery"
	"github.com/canceraiddev/aws-core-go/service"
	v4 "github.com/canceraiddev/aws-core-go/signing/v4"
)

var cli struct {
	ServiceFile string            `help:"YAML service definition file." type:"existingfile"`
	Service     string            `help:"Endpoint prefix when no service file is given." default:"execute-api"`
	Region      string            `help:"Signing region." default:"us-east-1"`
	Method      string            `help:"HTTP method." default:"GET"`
	Path        string            `help:"Request path (percent-safe)." default:"/"`
	Query       map[string]string `help:"Query parameters."`
	Header      map[string]string `help:"Extra headers to sign."`
	Body        string            `help:"Request body."`
	At          string            `help:"Signing time (RFC 3339); empty means now."`
	Debug       bool              `help:"Log the canonical request and string to sign."`
}

func main() {
	cmd := kong.Parse(&cli,
		kong.Name("sigv4sign"),
		kong.Description("Sign an AWS-style request and print its headers."))
	cmd.FatalIfErrorf(run())
}

func run() error {
	logger := zerolog.Nop()
	if cli.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	creds := credentials.NewSession(
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		os.Getenv("AWS_SESSION_TOKEN"))
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}

	svc, err := loadService()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if cli.At != "" {
		now, err = time.Parse(time.RFC3339, cli.At)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
		now = now.UTC()
	}

	payloadHash := v4.PayloadHash([]byte(cli.Body))
	host := svc.Host()

	headers := http.Header{}
	for _, name := range sortedKeys(cli.Header) {
		headers.Set(name, cli.Header[name])
	}
	headers.Set("Host", host)
	headers.Set("X-Amz-Date", now.Format(v4.TimeFormat))
	headers.Set("X-Amz-Content-Sha256", payloadHash)

	encoder := httpquery.NewEncoder()
	for _, key := range sortedKeys(cli.Query) {
		encoder.Add(key, cli.Query[key])
	}
	canonicalQuery := encoder.EncodeSorted()

	signer := v4.Signer{
		Credentials: creds,
		Region:      svc.Region(),
		ServiceName: svc.SigningName(),
		Time:        now,
	}
	res := signer.Sign(v4.SignRequest{
		Method:         strings.ToUpper(cli.Method),
		Path:           cli.Path,
		CanonicalQuery: canonicalQuery,
		Headers:        headers,
		PayloadHash:    payloadHash,
	})

	logger.Debug().Str("canonical_request", res.CanonicalRequest).Msg("canonical request")
	logger.Debug().Str("string_to_sign", res.StringToSign).Msg("string to sign")

	url := "https://" + host + cli.Path
	if canonicalQuery != "" {
		url += "?" + canonicalQuery
	}
	fmt.Printf("%s %s\n", strings.ToUpper(cli.Method), url)

	headers.Set("Authorization", res.Authorization)
	if creds.HasSessionToken() {
		headers.Set("X-Amz-Security-Token", creds.SessionToken)
	}
	for _, name := range sortedHeaderNames(headers) {
		for _, value := range headers[name] {
			fmt.Printf("%s: %s\n", name, value)
		}
	}
	return nil
}

func loadService() (service.Service, error) {
	if cli.ServiceFile != "" {
		return service.LoadFile(cli.ServiceFile)
	}
	if !service.ValidHostLabel(cli.Service) || !service.ValidHostLabel(cli.Region) {
		return service.Service{}, fmt.Errorf("invalid service %q or region %q", cli.Service, cli.Region)
	}
	return service.New(cli.Service, "", service.ProtocolRestJSON,
		service.WithEndpoint(service.RegionalEndpoint(cli.Region))), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedHeaderNames(h http.Header) []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
