package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-06")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-01-06" {
		t.Errorf("String = %q", d.String())
	}
	if d.Hour() != 12 || d.Location() != time.UTC {
		t.Errorf("date not anchored to noon UTC: %v", d.Time)
	}
	if !d.Weekend() {
		t.Error("2024-01-06 is a Saturday")
	}

	for _, bad := range []string{"", "06/01/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestNormalizeKeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	d := Normalize(time.Date(2024, 1, 8, 0, 30, 0, 0, loc))
	if d.String() != "2024-01-08" {
		t.Fatalf("Normalize moved the day: %v", d)
	}
}

func TestDateOnlyJSON(t *testing.T) {
	d := NewDate(2024, time.January, 8)
	body, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `"2024-01-08"` {
		t.Errorf("marshal = %s", body)
	}

	var parsed DateOnly
	if err := json.Unmarshal([]byte(`"2024-01-08"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip changed date: %v", parsed)
	}

	var zero DateOnly
	if err := json.Unmarshal([]byte(`null`), &zero); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !zero.IsZero() {
		t.Error("null should decode to the zero date")
	}
	if body, _ := json.Marshal(zero); string(body) != "null" {
		t.Errorf("zero date should marshal to null, got %s", body)
	}
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	if err := d.Scan(time.Date(2024, 1, 6, 23, 45, 0, 0, time.FixedZone("UTC-5", -5*60*60))); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.String() != "2024-01-06" {
		t.Errorf("scanned date = %v", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Error("nil should scan to the zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected an error scanning an int")
	}
}
