package request_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/canceraiddev/aws-core-go/request"
	"github.com/canceraiddev/aws-core-go/service"
)

func TestEmptyBody(t *testing.T) {
	b := request.EmptyBody()
	if !b.IsEmpty() {
		t.Error("expect empty body")
	}
	if got := b.Bytes(); len(got) != 0 {
		t.Errorf("expect no bytes, got %q", got)
	}
	svc := service.New("dynamodb", "2012-08-10", service.ProtocolJSON)
	if got := b.ContentType(svc); got != "" {
		t.Errorf("expect no content type, got %q", got)
	}
}

func TestJSONBodyRoundTrip(t *testing.T) {
	type item struct {
		Table string            `json:"TableName"`
		Keys  map[string]string `json:"Keys"`
	}
	in := item{Table: "music", Keys: map[string]string{"artist": "acme"}}

	b, err := request.JSONBody(in)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	var out item
	if err := json.Unmarshal(b.Bytes(), &out); err != nil {
		t.Fatalf("expect valid JSON, got %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	svc := service.New("dynamodb", "2012-08-10", service.ProtocolJSON,
		service.WithJSONVersion("1.0"))
	if got := b.ContentType(svc); got != "application/x-amz-json-1.0" {
		t.Errorf("unexpected content type %q", got)
	}
}

func TestJSONBodyMarshalFailure(t *testing.T) {
	if _, err := request.JSONBody(func() {}); err == nil {
		t.Error("expect error for unmarshalable value")
	}
}

func TestStringBody(t *testing.T) {
	b := request.StringBody("text/plain", "hello")
	if b.IsEmpty() {
		t.Error("expect non-empty body")
	}
	if got := b.String(); got != "hello" {
		t.Errorf("expect hello, got %q", got)
	}

	// explicit mime type wins over the service content type
	svc := service.New("s3", "2006-03-01", service.ProtocolRestXML)
	if got := b.ContentType(svc); got != "text/plain" {
		t.Errorf("expect text/plain, got %q", got)
	}
}
