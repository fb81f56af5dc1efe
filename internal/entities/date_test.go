package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 00:30 on the 5th in UTC+10 is still the 4th in UTC; the local day wins.
	d := DateOf(time.Date(2024, 5, 5, 0, 30, 0, 0, loc))

	if got := d.String(); got != "2024-05-05" {
		t.Fatalf("String: got %s, want 2024-05-05", got)
	}
	if d.Location() != time.UTC || d.Hour() != 0 {
		t.Fatalf("date should be normalized to midnight UTC, got %v", d.Time)
	}
}

func TestDateScan(t *testing.T) {
	want := "2024-02-29"
	inputs := []any{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"2024-02-29",
		[]byte("2024-02-29"),
		"2024-02-29 00:00:00+00:00",
	}

	for _, in := range inputs {
		var d Date
		if err := d.Scan(in); err != nil {
			t.Fatalf("Scan(%#v) failed: %v", in, err)
		}
		if d.String() != want {
			t.Errorf("Scan(%#v): got %s, want %s", in, d, want)
		}
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestDateValue(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "2024-12-31" {
		t.Errorf("Value: got %v, want 2024-12-31", v)
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due *Date `json:"due"`
	}

	d, _ := ParseDate("2025-01-15")
	out, err := json.Marshal(payload{Due: &d})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"due":"2025-01-15"}` {
		t.Errorf("Marshal: got %s", out)
	}

	var empty payload
	if err := json.Unmarshal([]byte(`{"due":null}`), &empty); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if empty.Due != nil {
		t.Errorf("Unmarshal null: got %v, want nil", empty.Due)
	}

	var bad payload
	if err := json.Unmarshal([]byte(`{"due":"15/01/2025"}`), &bad); err == nil {
		t.Error("Unmarshal should reject non ISO dates")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "yesterday", "2024/01/01"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}
