package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientGenerateMixedEntries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var payload GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if payload.Prompt != "a red bicycle" || payload.Style != "realistic" || payload.Size != "512x512" || payload.Num != 2 {
			t.Fatalf("request payload mismatch: %+v", payload)
		}
		_, _ = w.Write([]byte(`{"images":["https://cdn.example.com/a.png",{"id":"srv-1","url":"https://cdn.example.com/b.png"}]}`))
	}))
	defer ts.Close()

	client := NewClient(Options{BaseURL: ts.URL})
	got, err := client.Generate(context.Background(), GenerateRequest{Prompt: "a red bicycle", Style: "realistic", Size: "512x512", Num: 2})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected result count: %d", len(got))
	}
	if got[0].ID != "" || got[0].URL != "https://cdn.example.com/a.png" {
		t.Fatalf("bare string entry mismatch: %+v", got[0])
	}
	if got[1].ID != "srv-1" || got[1].URL != "https://cdn.example.com/b.png" {
		t.Fatalf("object entry mismatch: %+v", got[1])
	}
}

func TestClientGenerateServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	client := NewClient(Options{BaseURL: ts.URL})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", Num: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error missing status code: %v", err)
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Fatalf("error missing body text: %v", err)
	}
}

func TestClientGenerateMalformedImages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "images not an array with described message",
			body: `{"images":"nope","error":"model overloaded"}`,
			want: "model overloaded",
		},
		{
			name: "images missing with message field",
			body: `{"message":"try again later"}`,
			want: "try again later",
		},
		{
			name: "images missing without description",
			body: `{"status":"ok"}`,
			want: "malformed response",
		},
		{
			name: "body not json",
			body: `<html>oops</html>`,
			want: "malformed response",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			client := NewClient(Options{BaseURL: ts.URL})
			_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", Num: 1})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestClientGenerateCancelled(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	client := NewClient(Options{BaseURL: ts.URL})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := client.Generate(ctx, GenerateRequest{Prompt: "x", Num: 1})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClientGenerateSkipsEmptyURLs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images":["", {"id":"a"}, "https://cdn.example.com/ok.png"]}`))
	}))
	defer ts.Close()

	client := NewClient(Options{BaseURL: ts.URL})
	got, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x", Num: 3})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://cdn.example.com/ok.png" {
		t.Fatalf("unexpected results: %+v", got)
	}
}
