package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "01/15/2024", want: NewDate(2024, time.January, 15)},
		{in: "2/20/2024", want: NewDate(2024, time.February, 20)},
		{in: "12/31/1999", want: NewDate(1999, time.December, 31)},
		{in: "02/30/2024", wantErr: true},
		{in: "13/01/2024", wantErr: true},
		{in: "2024-01-15", wantErr: true},
		{in: "01/15", wantErr: true},
		{in: "", wantErr: true},
		{in: "aa/bb/cccc", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDate(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDate(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDate(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"1/5/2024"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d != NewDate(2024, time.January, 5) {
		t.Fatalf("unexpected date %v", d)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"01/05/2024"` {
		t.Fatalf("expected zero-padded MM/DD/YYYY, got %s", out)
	}

	if err := json.Unmarshal([]byte(`20240105`), &d); err == nil {
		t.Fatalf("expected error for non-string date")
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-02-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-02-20" {
		t.Fatalf("round trip mismatch: %s", d)
	}
	if !d.Time().Equal(time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", d.Time())
	}
}
