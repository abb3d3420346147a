package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"library-assistant/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req gemini.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: "hello back"}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key").WithBaseURL(ts.URL)

	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hello"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "hello back" {
		t.Errorf("expected %q, got %q", "hello back", resp.Text())
	}
}

func TestResponseText(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	if nilResp.Text() != "" {
		t.Error("nil response should yield empty text")
	}
	empty := &gemini.GenerateResponse{}
	if empty.Text() != "" {
		t.Error("empty response should yield empty text")
	}
}
