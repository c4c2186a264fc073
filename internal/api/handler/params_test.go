package handler

import "testing"

func TestParseID(t *testing.T) {
	valid := map[string]int64{"0": 0, "7": 7, "0042": 42, "9223372036854775807": 9223372036854775807}
	for in, want := range valid {
		got, ok := parseID(in)
		if !ok || got != want {
			t.Fatalf("parseID(%q): expected %d, got %d (%v)", in, want, got, ok)
		}
	}

	for _, in := range []string{"", "-1", "+1", " 1", "1a", "1.0", "9223372036854775808"} {
		if _, ok := parseID(in); ok {
			t.Fatalf("parseID(%q): expected rejection", in)
		}
	}
}
