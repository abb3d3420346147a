package scope_test

import (
	"testing"

	"library-assistant/pkg/scope"
)

func TestIssueAndVerify(t *testing.T) {
	m := scope.NewManager("test-secret")

	token, err := m.Issue(scope.Payload{Cardnumber: "C-1001", Username: "reader"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if payload.Cardnumber != "C-1001" || payload.Username != "reader" {
		t.Errorf("payload roundtrip mismatch: %+v", payload)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := scope.NewManager("secret-a").Issue(scope.Payload{Cardnumber: "C-1"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := scope.NewManager("secret-b").Verify(token); err == nil {
		t.Error("expected verification failure with wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := scope.NewManager("s").Verify("not.a.token"); err == nil {
		t.Error("expected verification failure for garbage token")
	}
}
