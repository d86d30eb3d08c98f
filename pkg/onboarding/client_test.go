package onboarding_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubham-dpworld/initializr-ui/pkg/onboarding"
)

func TestSubmitPostsJSONPayload(t *testing.T) {
	var (
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := onboarding.NewClient(server.URL, onboarding.WithHTTPClient(server.Client()))
	err := client.Submit(context.Background(), onboarding.Description{
		ClientName:  "acme-portal",
		Contact:     "platform@acme.example",
		Description: "Nightly scaffold generation for internal services",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if gotPath != onboarding.DefaultPath {
		t.Fatalf("path = %q, want %q", gotPath, onboarding.DefaultPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}

	var decoded onboarding.Description
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.ClientName != "acme-portal" || decoded.Description == "" {
		t.Fatalf("decoded payload = %+v", decoded)
	}
}

func TestSubmitRequiresDescription(t *testing.T) {
	client := onboarding.NewClient("http://localhost:0")

	if err := client.Submit(context.Background(), onboarding.Description{ClientName: "x"}); err == nil {
		t.Fatal("Submit() succeeded without a description")
	}
}

func TestSubmitRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	client := onboarding.NewClient(server.URL, onboarding.WithHTTPClient(server.Client()))
	err := client.Submit(context.Background(), onboarding.Description{Description: "x"})
	if err == nil {
		t.Fatal("Submit() succeeded on a 400 response")
	}
}

func TestWithPathOverridesEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := onboarding.NewClient(server.URL,
		onboarding.WithHTTPClient(server.Client()),
		onboarding.WithPath("/v2/onboarding"))
	if err := client.Submit(context.Background(), onboarding.Description{Description: "x"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if gotPath != "/v2/onboarding" {
		t.Fatalf("path = %q, want /v2/onboarding", gotPath)
	}
}

func TestSubmitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := onboarding.NewClient(server.URL, onboarding.WithHTTPClient(server.Client()))
	if err := client.Submit(ctx, onboarding.Description{Description: "x"}); err == nil {
		t.Fatal("Submit() succeeded with a cancelled context")
	}
}
