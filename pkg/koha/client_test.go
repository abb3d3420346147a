package koha_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"library-assistant/pkg/koha"
)

func TestKohaClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/biblios", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		q := r.URL.Query().Get("q")
		if strings.Contains(q, "nothing") {
			json.NewEncoder(w).Encode([]koha.Biblio{})
			return
		}
		json.NewEncoder(w).Encode([]koha.Biblio{
			{BiblioID: "42", Title: "Dune", Author: "Herbert, Frank", ISBN: "9780441172719"},
		})
	})

	mux.HandleFunc("/api/v1/biblios/42/items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]koha.Item{{ItemID: 1}, {ItemID: 2}})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := koha.NewClient(ts.URL, "koha", "secret")
	ctx := context.Background()

	t.Run("Search By Title", func(t *testing.T) {
		books, err := client.SearchByTitle(ctx, "Dune")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 1 || books[0].Title != "Dune" {
			t.Errorf("unexpected result: %+v", books)
		}
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		books, err := client.SearchByTitle(ctx, "nothing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 0 {
			t.Errorf("expected zero results, got %d", len(books))
		}
	})

	t.Run("Count Items", func(t *testing.T) {
		n, err := client.CountItems(ctx, "42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 items, got %d", n)
		}
	})

	t.Run("Context Cancellation Propagates", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := client.SearchByTitle(cancelled, "Dune"); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}
