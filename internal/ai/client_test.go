package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "key", "model")
	if c.BaseURL == "" {
		t.Fatalf("expected default base URL")
	}
	if c.HTTPClient == nil || c.HTTPClient.Timeout == 0 {
		t.Fatalf("expected http client with timeout")
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Plant basil in full sun."}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "test-model")
	reply, err := c.Generate(context.Background(), []Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "what herb should I start with?"},
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if reply != "Plant basil in full sun." {
		t.Fatalf("reply = %q", reply)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq.Model != "test-model" || len(gotReq.Messages) != 2 {
		t.Fatalf("request payload unexpected: %+v", gotReq)
	}
}

func TestGenerate_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1/", "k", "m")
	if _, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		c    *Client
	}{
		{"missing api key", &Client{BaseURL: "http://x", Model: "m", HTTPClient: http.DefaultClient}},
		{"missing model", &Client{BaseURL: "http://x", APIKey: "k", HTTPClient: http.DefaultClient}},
		{"nil http client", &Client{BaseURL: "http://x", APIKey: "k", Model: "m"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.c.Generate(context.Background(), nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestGenerate_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	_, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("expected body snippet in error, got %v", err)
	}
}

func TestGenerate_APIErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid model"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	_, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil || err.Error() != "invalid model" {
		t.Fatalf("expected error field propagated, got %v", err)
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m")
	if _, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

func TestGenerate_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "k", "m")
	if _, err := c.Generate(ctx, []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
