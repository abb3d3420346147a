package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/books/points/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Limit != 5 || !req.WithPayload {
			t.Errorf("request = %+v", req)
		}

		json.NewEncoder(w).Encode(SearchResponse{
			Result: []ScoredPoint{
				{ID: 1, Score: 0.92, Payload: map[string]interface{}{"title": "Dune"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.SearchPoints(context.Background(), "books", SearchRequest{
		Vector:      []float32{0.1, 0.2},
		Limit:       5,
		WithPayload: true,
	})
	if err != nil {
		t.Fatalf("SearchPoints() error = %v", err)
	}
	if len(resp.Result) != 1 || resp.Result[0].Payload["title"] != "Dune" {
		t.Errorf("result = %+v", resp.Result)
	}
}

func TestSearchPoints_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.SearchPoints(context.Background(), "books", SearchRequest{}); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestCollectionExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/web_data/exists" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"result":{"exists":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	exists, err := client.CollectionExists(context.Background(), "web_data")
	if err != nil {
		t.Fatalf("CollectionExists() error = %v", err)
	}
	if !exists {
		t.Error("exists = false, want true")
	}
}
