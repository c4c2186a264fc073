package domain

import "testing"

func TestParseIDPolicy(t *testing.T) {
	for in, want := range map[string]IDPolicy{
		"":         IDPolicyReassign,
		"reassign": IDPolicyReassign,
		"preserve": IDPolicyPreserve,
		"reject":   IDPolicyReject,
	} {
		got, err := ParseIDPolicy(in)
		if err != nil {
			t.Fatalf("ParseIDPolicy(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseIDPolicy(%q): expected %s, got %s", in, want, got)
		}
	}

	if _, err := ParseIDPolicy("move"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestIDPolicy_Resolve(t *testing.T) {
	if id, _ := IDPolicyReassign.Resolve(5, 6); id != 6 {
		t.Fatalf("reassign: expected 6, got %d", id)
	}
	if id, _ := IDPolicyPreserve.Resolve(5, 6); id != 5 {
		t.Fatalf("preserve: expected 5, got %d", id)
	}
	if _, err := IDPolicyReject.Resolve(5, 6); err == nil {
		t.Fatalf("reject: expected error on mismatch")
	}
	if id, err := IDPolicyReject.Resolve(5, 5); err != nil || id != 5 {
		t.Fatalf("reject: expected 5, got %d (%v)", id, err)
	}
}
