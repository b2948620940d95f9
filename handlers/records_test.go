package handlers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/Jhorlodev/horas-extras/models"
)

func fptr(v float64) *float64 { return &v }

func TestCreateRecordRequestValidation(t *testing.T) {
	cases := []struct {
		name string
		req  createRecordRequest
		ok   bool
	}{
		{"minimal valid", createRecordRequest{Date: "2024-01-08", Hours: fptr(2)}, true},
		{"no hours", createRecordRequest{Date: "2024-01-08"}, true},
		{"missing date", createRecordRequest{Hours: fptr(2)}, false},
		{"garbage date", createRecordRequest{Date: "08/01/2024", Hours: fptr(2)}, false},
		{"zero hours", createRecordRequest{Date: "2024-01-08", Hours: fptr(0)}, false},
		{"too many hours", createRecordRequest{Date: "2024-01-08", Hours: fptr(25)}, false},
		{"NaN hours", createRecordRequest{Date: "2024-01-08", Hours: fptr(math.NaN())}, false},
		{"negative salary", createRecordRequest{Date: "2024-01-08", BaseSalary: fptr(-10)}, false},
		{"negative bonus", createRecordRequest{Date: "2024-01-08", NightBonus: true, BonusAmount: fptr(-5)}, false},
		{"bad hour type", createRecordRequest{Date: "2024-01-08", HourType: "dusk"}, false},
		{"night hour type", createRecordRequest{Date: "2024-01-08", HourType: models.HourTypeNight}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.req.toRecord(1)
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestToRecordDerivesPayFields(t *testing.T) {
	req := createRecordRequest{Date: "2024-01-08", Hours: fptr(2), BaseSalary: fptr(1000000)}
	record, err := req.toRecord(7)
	if err != nil {
		t.Fatalf("toRecord: %v", err)
	}
	if record.UserID != 7 {
		t.Errorf("UserID = %d, want 7", record.UserID)
	}
	if record.HourlyRate == nil || math.Abs(*record.HourlyRate-7954.5) > 1e-6 {
		t.Errorf("HourlyRate = %v, want ~7954.5", record.HourlyRate)
	}
	if record.TotalPay == nil || math.Abs(*record.TotalPay-15909.0) > 1e-6 {
		t.Errorf("TotalPay = %v, want ~15909.0", record.TotalPay)
	}
	if record.HourType != models.HourTypeDaytime {
		t.Errorf("HourType = %q, want default daytime", record.HourType)
	}
}

func TestToRecordWithoutSalaryLeavesPayAbsent(t *testing.T) {
	req := createRecordRequest{Date: "2024-01-08", Hours: fptr(2)}
	record, err := req.toRecord(1)
	if err != nil {
		t.Fatalf("toRecord: %v", err)
	}
	if record.HourlyRate != nil || record.TotalPay != nil {
		t.Errorf("expected absent pay fields, got rate=%v pay=%v", record.HourlyRate, record.TotalPay)
	}
}

func TestToRecordDropsBonusFieldsWithoutFlag(t *testing.T) {
	req := createRecordRequest{
		Date:        "2024-01-08",
		Hours:       fptr(2),
		BonusAmount: fptr(5000),
		BonusDetail: "turno nocturno",
	}
	record, err := req.toRecord(1)
	if err != nil {
		t.Fatalf("toRecord: %v", err)
	}
	if record.BonusAmount != nil || record.BonusDetail != "" {
		t.Errorf("bonus fields should be dropped when night_bonus is false, got %+v", record)
	}
}

func TestParseRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/records/summary?from=2024-01-01&to=2024-01-31", nil)
	from, to, err := parseRange(r)
	if err != nil {
		t.Fatalf("parseRange: %v", err)
	}
	if from.String() != "2024-01-01" || to.String() != "2024-01-31" {
		t.Fatalf("parsed %v..%v", from, to)
	}

	r = httptest.NewRequest("GET", "/api/records/summary?from=2024-01-01", nil)
	if _, _, err := parseRange(r); err == nil {
		t.Fatal("expected an error for a missing to date")
	}
}

func TestCredentialsValidation(t *testing.T) {
	cases := []struct {
		name string
		req  credentialsRequest
		ok   bool
	}{
		{"valid", credentialsRequest{Email: "Yo@Example.com", Password: "secret"}, true},
		{"empty email", credentialsRequest{Password: "secret"}, false},
		{"not an email", credentialsRequest{Email: "nope", Password: "secret"}, false},
		{"short password", credentialsRequest{Email: "yo@example.com", Password: "1234"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.validate()
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
	req := credentialsRequest{Email: "  Yo@Example.com ", Password: "secret"}
	if err := req.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if req.Email != "yo@example.com" {
		t.Errorf("email not normalized: %q", req.Email)
	}
}
