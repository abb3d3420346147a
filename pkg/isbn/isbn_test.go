package isbn_test

import (
	"testing"

	"library-assistant/pkg/isbn"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"0-306-40615-2", true},   // ISBN-10
		{"043942089X", true},      // ISBN-10 with X check digit
		{"978-0-306-40615-7", true}, // ISBN-13
		{"9780439420891", false},  // bad ISBN-13 checksum
		{"0-306-40615-3", false},  // bad ISBN-10 checksum
		{"0378-5955", true},       // ISSN
		{"0378-5954", false},      // bad ISSN checksum
		{"12X", false},            // malformed, too short
		{"", false},
		{"not an isbn", false},
	}

	for _, c := range cases {
		if got := isbn.IsValid(c.in); got != c.valid {
			t.Errorf("IsValid(%q) = %v, want %v", c.in, got, c.valid)
		}
	}
}

func TestExtract(t *testing.T) {
	t.Run("Finds Token In Sentence", func(t *testing.T) {
		tok, ok := isbn.Extract("do you have the book with isbn 978-0-306-40615-7 in stock?")
		if !ok {
			t.Fatal("expected a candidate token")
		}
		if tok != "9780306406157" {
			t.Errorf("expected normalized token, got %q", tok)
		}
	})

	t.Run("Malformed Attempt Is Still Extracted", func(t *testing.T) {
		tok, ok := isbn.Extract("find the book with isbn 12X")
		if !ok || tok != "12X" {
			t.Errorf("expected token %q, got %q (ok=%v)", "12X", tok, ok)
		}
	})

	t.Run("No Token", func(t *testing.T) {
		if _, ok := isbn.Extract("what is the isbn of Dune?"); ok {
			t.Error("expected no candidate token in plain title query")
		}
	})
}
